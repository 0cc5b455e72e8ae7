package models

// Course represents a disc golf course. Names are unique across all courses.
type Course struct {
	ID       int      `gorm:"primaryKey;autoIncrement" json:"course_id"`
	Name     string   `gorm:"type:varchar(100);unique;not null" json:"name"`
	NumHoles int      `gorm:"not null;default:18;column:num_holes" json:"num_holes"`
	Par      int      `gorm:"not null;default:54" json:"par"`
	Scores   []*Score `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
