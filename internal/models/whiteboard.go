package models

import "time"

// Whiteboard holds one snapshot row per room. The data column carries the
// entire serialized element list and is replaced wholesale on every save,
// never patched.
type Whiteboard struct {
	RoomID    string    `gorm:"primaryKey" json:"room_id"`
	Data      string    `gorm:"type:text" json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
