package services

import (
	"context"
	"log"

	"collabBoard/internal/broker"
	"collabBoard/internal/crypto"
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/repositories"
)

type ChatService struct {
	chatRepo  *repositories.ChatRepository
	cipher    *crypto.Cipher
	publisher broker.Publisher
}

func NewChatService(
	chatRepo *repositories.ChatRepository,
	cipher *crypto.Cipher,
	publisher broker.Publisher,
) *ChatService {
	return &ChatService{
		chatRepo:  chatRepo,
		cipher:    cipher,
		publisher: publisher,
	}
}

// PostMessage persists the encrypted message and broadcasts the plaintext
// copy on the room's channel. The write is the source of truth: a publish
// failure is logged and the call still succeeds. The caller-supplied tempID
// is echoed back unchanged so the origin client can reconcile its
// optimistic insert.
func (cs *ChatService) PostMessage(ctx context.Context, roomID string, senderID uint, content *string, tempID string) (*models.MessageResponse, error) {
	var stored *string
	if content != nil && *content != "" {
		encrypted, err := cs.cipher.Encrypt(*content)
		if err != nil {
			return nil, err
		}
		stored = &encrypted
	} else {
		content = nil
	}

	saved, err := cs.chatRepo.SaveMessage(&models.Message{
		RoomID:   roomID,
		SenderID: senderID,
		Content:  stored,
	})
	if err != nil {
		return nil, err
	}

	response := saved.ToMessageResponse(content, tempID)

	if err := cs.publisher.Publish(ctx, broker.MessageChannel(roomID), enums.SOCKET_EVENT_NEW_MESSAGE, response); err != nil {
		log.Printf("Error publishing new-message event for room %s: %v", roomID, err)
	}

	return response, nil
}

// GetRoomMessages returns the room's messages in chronological order with
// bodies decrypted. A message that fails to decrypt surfaces with null
// content instead of failing the whole listing.
func (cs *ChatService) GetRoomMessages(roomID string) ([]*models.MessageResponse, error) {
	messages, err := cs.chatRepo.GetMessagesByRoomId(roomID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.MessageResponse, 0, len(messages))
	for i := range messages {
		message := &messages[i]
		var plaintext *string
		if message.Content != nil {
			decrypted, err := cs.cipher.Decrypt(*message.Content)
			if err != nil {
				log.Printf("Error decrypting message %d: %v", message.ID, err)
			} else {
				plaintext = &decrypted
			}
		}
		responses = append(responses, message.ToMessageResponse(plaintext, ""))
	}
	return responses, nil
}

// DeleteMessage removes a message owned by the acting user and broadcasts a
// deletion event carrying only the id.
func (cs *ChatService) DeleteMessage(ctx context.Context, messageID uint, actingUserID uint) error {
	message, err := cs.chatRepo.FindMessageById(messageID)
	if err != nil {
		return err
	}
	if message.SenderID != actingUserID {
		return errs.ErrNotMessageSender
	}

	if err := cs.chatRepo.DeleteMessage(messageID); err != nil {
		return err
	}

	payload := map[string]uint{"id": messageID}
	if err := cs.publisher.Publish(ctx, broker.MessageChannel(message.RoomID), enums.SOCKET_EVENT_MESSAGE_DELETED, payload); err != nil {
		log.Printf("Error publishing message-deleted event for room %s: %v", message.RoomID, err)
	}
	return nil
}
