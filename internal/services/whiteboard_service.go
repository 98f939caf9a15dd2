package services

import (
	"context"
	"encoding/json"
	"log"

	"collabBoard/internal/broker"
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/repositories"
)

type WhiteboardService struct {
	whiteboardRepo *repositories.WhiteboardRepository
	publisher      broker.Publisher
	softLimit      int
}

func NewWhiteboardService(
	whiteboardRepo *repositories.WhiteboardRepository,
	publisher broker.Publisher,
	softLimit int,
) *WhiteboardService {
	if softLimit <= 0 {
		softLimit = broker.DefaultSoftLimit
	}
	return &WhiteboardService{
		whiteboardRepo: whiteboardRepo,
		publisher:      publisher,
		softLimit:      softLimit,
	}
}

// SaveWhiteboard replaces the room's snapshot and broadcasts the update.
// If the serialized event would exceed the transport's payload ceiling, a
// lightweight refresh signal is published instead of the elements. The save
// and the publish are independent: a publish failure never fails the save.
func (ws *WhiteboardService) SaveWhiteboard(ctx context.Context, roomID string, elements json.RawMessage) error {
	if len(elements) == 0 || string(elements) == "null" {
		return errs.ErrElementsRequired
	}

	if err := ws.whiteboardRepo.SaveWhiteboard(roomID, string(elements)); err != nil {
		return err
	}

	payload := models.WhiteboardUpdatePayload{Elements: elements}
	body, err := json.Marshal(payload)
	if err != nil || len(body) > ws.softLimit {
		payload = models.WhiteboardUpdatePayload{Action: enums.WHITEBOARD_ACTION_REFRESH}
	}

	if err := ws.publisher.Publish(ctx, broker.WhiteboardChannel(roomID), enums.SOCKET_EVENT_WHITEBOARD_UPDATE, payload); err != nil {
		log.Printf("Error publishing whiteboard update for room %s: %v", roomID, err)
	}
	return nil
}

// LoadWhiteboard returns the room's element list, or an empty list when no
// snapshot exists yet.
func (ws *WhiteboardService) LoadWhiteboard(roomID string) (json.RawMessage, error) {
	whiteboard, err := ws.whiteboardRepo.FindRoomWhiteboard(roomID)
	if err != nil {
		return nil, err
	}
	if whiteboard == nil || whiteboard.Data == "" {
		return json.RawMessage("[]"), nil
	}
	return json.RawMessage(whiteboard.Data), nil
}
