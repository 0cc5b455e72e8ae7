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

// ListPlayers returns all players ordered by id.
func ListPlayers() ([]models.Player, error) {
	var players []models.Player
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Order("id").Find(&players).Error
	})
	return players, err
}

// FindPlayer returns the player with the given id, or ErrNotFound.
func FindPlayer(id int) (*models.Player, error) {
	var player models.Player
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).First(&player, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// CreatePlayer inserts a new player and returns it with its assigned id.
func CreatePlayer(name string) (*models.Player, error) {
	start := time.Now()
	player := models.Player{Name: name}
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Create(&player).Error
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordDBOperation("insert", "players", start)
	return &player, nil
}

// UpdatePlayer replaces the mutable fields of a player, or returns
// ErrNotFound for an unknown id.
func UpdatePlayer(id int, name string) error {
	start := time.Now()
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var player models.Player
			if err := tx.First(&player, "id = ?", id).Error; err != nil {
				return err
			}
			player.Name = name
			return tx.Save(&player).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	metrics.RecordDBOperation("update", "players", start)
	return nil
}

// DeletePlayer removes a player. The foreign key cascade atomically removes
// every score referencing it.
func DeletePlayer(id int) error {
	start := time.Now()
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var player models.Player
			if err := tx.First(&player, "id = ?", id).Error; err != nil {
				return err
			}
			return tx.Delete(&player).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	metrics.RecordDBOperation("delete", "players", start)
	return nil
}

// ImportPlayers inserts one player per name in a single transaction. Used by
// the XLSX bulk import endpoint.
func ImportPlayers(names []string) (int, error) {
	start := time.Now()
	count := 0
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, name := range names {
				player := models.Player{Name: name}
				if err := tx.Create(&player).Error; err != nil {
					return err
				}
				count++
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	metrics.RecordDBOperation("insert", "players", start)
	return count, nil
}
