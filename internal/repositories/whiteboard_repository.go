package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collabBoard/internal/models"
)

type WhiteboardRepository struct {
	db *gorm.DB
}

func NewWhiteboardRepository(db *gorm.DB) *WhiteboardRepository {
	return &WhiteboardRepository{
		db: db,
	}
}

// SaveWhiteboard replaces the single snapshot row for the room. The data
// column always holds the entire element list, never a delta.
func (wr *WhiteboardRepository) SaveWhiteboard(roomID string, data string) error {
	return wr.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&models.Whiteboard{
			RoomID:    roomID,
			Data:      data,
			UpdatedAt: time.Now(),
		}).Error
}

// FindRoomWhiteboard returns nil without error when the room has no
// snapshot yet.
func (wr *WhiteboardRepository) FindRoomWhiteboard(roomID string) (*models.Whiteboard, error) {
	var whiteboard models.Whiteboard
	if err := wr.db.Where("room_id = ?", roomID).First(&whiteboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &whiteboard, nil
}
