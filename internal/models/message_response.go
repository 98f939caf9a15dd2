package models

import "time"

type MessageResponse struct {
	ID        uint          `json:"id"`
	RoomID    string        `json:"room_id"`
	Sender    *UserResponse `json:"sender"`
	Content   *string       `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	TempID    string        `json:"temp_id,omitempty"`
}
