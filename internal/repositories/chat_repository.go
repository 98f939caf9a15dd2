package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

// SaveMessage persists a message, creating the room on the fly if the id is
// unknown. The conditional room insert and the message insert share one
// transaction, so two simultaneous first messages to a fresh id cannot race
// into duplicate rooms.
func (chr *ChatRepository) SaveMessage(message *models.Message) (*models.Message, error) {
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		room := models.Room{
			ID:   message.RoomID,
			Name: fmt.Sprintf("Chat Room %s", message.RoomID),
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).
			Create(&room).Error; err != nil {
			return err
		}

		if err := tx.Create(message).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).
			Where("id = ?", message.RoomID).
			Update("updated_at", time.Now()).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	var saved models.Message
	if err := chr.db.Preload("Sender").First(&saved, message.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (chr *ChatRepository) GetMessagesByRoomId(roomID string) ([]models.Message, error) {
	var messages []models.Message
	if err := chr.db.
		Preload("Sender").
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (chr *ChatRepository) FindMessageById(messageID uint) (*models.Message, error) {
	var message models.Message
	if err := chr.db.First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (chr *ChatRepository) DeleteMessage(messageID uint) error {
	return chr.db.Delete(&models.Message{}, messageID).Error
}
