package models

// Player represents a human who records scores
type Player struct {
	ID     int      `gorm:"primaryKey;autoIncrement" json:"player_id"`
	Name   string   `gorm:"type:varchar(100);not null" json:"name"`
	Scores []*Score `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
}
