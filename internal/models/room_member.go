package models

import "gorm.io/gorm"

// RoomMember maps users to rooms. Membership is a set: the composite
// unique index keeps one row per (room, user) pair.
type RoomMember struct {
	gorm.Model
	RoomID string `gorm:"index:idx_room_members_room_user,unique;not null" json:"room_id"`
	UserID uint   `gorm:"index:idx_room_members_room_user,unique;not null" json:"user_id"`
}
