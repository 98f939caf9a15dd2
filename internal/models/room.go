package models

import "time"

// Room is identified by an opaque string id. Rooms are created explicitly
// or implicitly by the first message posted to an unknown id.
type Room struct {
	ID         string       `gorm:"primaryKey" json:"id"`
	Name       string       `gorm:"not null" json:"name"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Members    []RoomMember `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Messages   []Message    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Whiteboard *Whiteboard  `gorm:"constraint:OnDelete:CASCADE" json:"whiteboard,omitempty"`
}
