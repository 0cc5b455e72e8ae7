package models

// Score represents one completed round by one player on one course. Deleting
// the player or the course cascades to the score.
type Score struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"score_id"`
	Throws   int     `gorm:"not null" json:"throws"`
	Date     string  `gorm:"type:varchar(10);not null" json:"date"`
	PlayerID int     `gorm:"not null;column:player_id" json:"player_id"`
	CourseID int     `gorm:"not null;column:course_id" json:"course_id"`
	Player   *Player `gorm:"foreignKey:PlayerID" json:"-"`
	Course   *Course `gorm:"foreignKey:CourseID" json:"-"`
}
