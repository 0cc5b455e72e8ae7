package services

import (
	"context"
	"errors"
	"time"

	"frolftracker/database"
	"frolftracker/metrics"
	"frolftracker/models"

	"gorm.io/gorm"
)

// ListCourses returns all courses ordered by id.
func ListCourses() ([]models.Course, error) {
	var courses []models.Course
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Order("id").Find(&courses).Error
	})
	return courses, err
}

// FindCourse returns the course with the given id, or ErrNotFound.
func FindCourse(id int) (*models.Course, error) {
	var course models.Course
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).First(&course, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse inserts a new course. A duplicate name returns ErrConflict;
// names are unique across all courses.
func CreateCourse(name string, numHoles, par int) (*models.Course, error) {
	start := time.Now()
	course := models.Course{Name: name, NumHoles: numHoles, Par: par}
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			taken, err := courseNameTaken(tx, name, 0)
			if err != nil {
				return err
			}
			if taken {
				return ErrConflict
			}
			return tx.Create(&course).Error
		})
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}
	metrics.RecordDBOperation("insert", "courses", start)
	return &course, nil
}

// UpdateCourse replaces the fields of a course. Renaming a course to a name
// held by another course returns ErrConflict.
func UpdateCourse(id int, name string, numHoles, par int) error {
	start := time.Now()
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var course models.Course
			if err := tx.First(&course, "id = ?", id).Error; err != nil {
				return err
			}
			taken, err := courseNameTaken(tx, name, id)
			if err != nil {
				return err
			}
			if taken {
				return ErrConflict
			}
			course.Name = name
			course.NumHoles = numHoles
			course.Par = par
			return tx.Save(&course).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	metrics.RecordDBOperation("update", "courses", start)
	return nil
}

// DeleteCourse removes a course. The foreign key cascade atomically removes
// every score referencing it.
func DeleteCourse(id int) error {
	start := time.Now()
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var course models.Course
			if err := tx.First(&course, "id = ?", id).Error; err != nil {
				return err
			}
			return tx.Delete(&course).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	metrics.RecordDBOperation("delete", "courses", start)
	return nil
}

// courseNameTaken reports whether a course other than excludeID already holds
// the given name.
func courseNameTaken(tx *gorm.DB, name string, excludeID int) (bool, error) {
	var taken bool
	err := tx.Model(&models.Course{}).
		Select("COUNT(*) > 0").
		Where("name = ? AND id <> ?", name, excludeID).
		Find(&taken).Error
	return taken, err
}
