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

// ScoreFilter narrows a score listing. Nil fields are unset; when both are
// set the filters combine as a conjunction.
type ScoreFilter struct {
	PlayerID *int
	CourseID *int
}

// ListScores returns the scores matching the filter, ordered by id. The
// filters are combined into a single query predicate before the rows are
// materialized.
func ListScores(filter ScoreFilter) ([]models.Score, error) {
	var scores []models.Score
	err := withTimeout(func(ctx context.Context) error {
		query := database.DB.WithContext(ctx).Order("id")
		if filter.PlayerID != nil {
			query = query.Where("player_id = ?", *filter.PlayerID)
		}
		if filter.CourseID != nil {
			query = query.Where("course_id = ?", *filter.CourseID)
		}
		return query.Find(&scores).Error
	})
	return scores, err
}

// FindScore returns the score with the given id, or ErrNotFound.
func FindScore(id int) (*models.Score, error) {
	var score models.Score
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).First(&score, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// CreateScore inserts a new score. A missing referenced player or course
// returns ErrPlayerNotFound or ErrCourseNotFound; the row is only written
// once both references resolve.
func CreateScore(throws int, date string, playerID, courseID int) (*models.Score, error) {
	start := time.Now()
	score := models.Score{Throws: throws, Date: date, PlayerID: playerID, CourseID: courseID}
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := checkScoreReferences(tx, playerID, courseID); err != nil {
				return err
			}
			return tx.Create(&score).Error
		})
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordDBOperation("insert", "scores", start)
	return &score, nil
}

// UpdateScore replaces the fields of a score, revalidating both references.
func UpdateScore(id, throws int, date string, playerID, courseID int) error {
	start := time.Now()
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var score models.Score
			if err := tx.First(&score, "id = ?", id).Error; err != nil {
				return err
			}
			if err := checkScoreReferences(tx, playerID, courseID); err != nil {
				return err
			}
			score.Throws = throws
			score.Date = date
			score.PlayerID = playerID
			score.CourseID = courseID
			return tx.Save(&score).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	metrics.RecordDBOperation("update", "scores", start)
	return nil
}

// DeleteScore removes a single score.
func DeleteScore(id int) error {
	start := time.Now()
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var score models.Score
			if err := tx.First(&score, "id = ?", id).Error; err != nil {
				return err
			}
			return tx.Delete(&score).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	metrics.RecordDBOperation("delete", "scores", start)
	return nil
}

// checkScoreReferences verifies that both foreign keys of a score resolve.
func checkScoreReferences(tx *gorm.DB, playerID, courseID int) error {
	var exists bool
	err := tx.Model(&models.Player{}).
		Select("COUNT(*) > 0").
		Where("id = ?", playerID).
		Find(&exists).Error
	if err != nil {
		return err
	}
	if !exists {
		return ErrPlayerNotFound
	}

	err = tx.Model(&models.Course{}).
		Select("COUNT(*) > 0").
		Where("id = ?", courseID).
		Find(&exists).Error
	if err != nil {
		return err
	}
	if !exists {
		return ErrCourseNotFound
	}
	return nil
}
