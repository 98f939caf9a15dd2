package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
	}
}

func (rr *RoomRepository) CreateRoom(room *models.Room, ownerID uint) (*models.Room, error) {
	err := rr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		return tx.Create(&models.RoomMember{
			RoomID: room.ID,
			UserID: ownerID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (rr *RoomRepository) FindRoomById(roomID string) (*models.Room, error) {
	var room models.Room
	if err := rr.db.Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// EnsureMembership creates the membership row if it does not exist yet.
// The insert lands on the (room_id, user_id) unique index with a conflict
// clause, so concurrent joins for the same pair leave exactly one row and
// neither caller sees an error.
func (rr *RoomRepository) EnsureMembership(roomID string, userID uint) error {
	return rr.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&models.RoomMember{RoomID: roomID, UserID: userID}).Error
}

func (rr *RoomRepository) IsMember(roomID string, userID uint) bool {
	var count int64
	rr.db.Model(&models.RoomMember{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count)
	return count > 0
}

// DeleteRoom removes the room and everything owned by it: members,
// messages and the whiteboard snapshot.
func (rr *RoomRepository) DeleteRoom(roomID string) error {
	return rr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.RoomMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Whiteboard{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", roomID).Delete(&models.Room{}).Error
	})
}
