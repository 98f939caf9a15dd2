package services

import (
	"github.com/google/uuid"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/repositories"
)

type RoomService struct {
	roomRepo *repositories.RoomRepository
}

func NewRoomService(roomRepo *repositories.RoomRepository) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

func (rs *RoomService) CreateRoom(name string, ownerID uint) (*models.Room, error) {
	if name == "" {
		return nil, errs.ErrRoomNameRequired
	}
	return rs.roomRepo.CreateRoom(&models.Room{
		ID:   uuid.NewString(),
		Name: name,
	}, ownerID)
}

// JoinRoom makes the user a member if they are not one already and returns
// the room's display name.
func (rs *RoomService) JoinRoom(roomID string, userID uint) (string, error) {
	room, err := rs.roomRepo.FindRoomById(roomID)
	if err != nil {
		return "", err
	}
	if err := rs.roomRepo.EnsureMembership(roomID, userID); err != nil {
		return "", err
	}
	return room.Name, nil
}

func (rs *RoomService) DeleteRoom(roomID string, actingUserID uint) error {
	if _, err := rs.roomRepo.FindRoomById(roomID); err != nil {
		return err
	}
	if !rs.roomRepo.IsMember(roomID, actingUserID) {
		return errs.ErrNotRoomMember
	}
	return rs.roomRepo.DeleteRoom(roomID)
}
