package models

import "time"

// Message bodies are stored encrypted. The plaintext form exists only in
// memory on the server that just encrypted or decrypted it and in the
// broadcast payload.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    string    `gorm:"index;not null" json:"room_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Sender    User      `json:"-"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ToMessageResponse builds the public view of a message with the given
// plaintext substituted for the stored ciphertext.
func (m *Message) ToMessageResponse(plaintext *string, tempID string) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		RoomID:    m.RoomID,
		Sender:    m.Sender.ToUserResponse(),
		Content:   plaintext,
		CreatedAt: m.CreatedAt,
		TempID:    tempID,
	}
}
