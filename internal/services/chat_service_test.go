package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabBoard/internal/crypto"
	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/repositories"
)

func newChatService(t *testing.T, publisher *fakePublisher) (*ChatService, *crypto.Cipher, *repositories.ChatRepository, *models.User) {
	t.Helper()
	db := newTestDB(t)
	repo := repositories.NewChatRepository(db)
	cipher := crypto.NewCipher("test-secret")
	sender := createTestUser(t, db, "u1@example.com")
	return NewChatService(repo, cipher, publisher), cipher, repo, sender
}

func TestPostMessageEncryptsAndBroadcastsPlaintext(t *testing.T) {
	publisher := &fakePublisher{}
	service, cipher, repo, sender := newChatService(t, publisher)

	content := "hello"
	response, err := service.PostMessage(context.Background(), "r1", sender.ID, &content, "t1")
	require.NoError(t, err)

	// The caller gets the plaintext back with the tempId echoed.
	require.NotNil(t, response.Content)
	assert.Equal(t, "hello", *response.Content)
	assert.Equal(t, "t1", response.TempID)
	assert.Equal(t, sender.ID, response.Sender.ID)

	// The stored row holds ciphertext, not the literal plaintext.
	stored, err := repo.FindMessageById(response.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Content)
	assert.NotEqual(t, "hello", *stored.Content)
	decrypted, err := cipher.Decrypt(*stored.Content)
	require.NoError(t, err)
	assert.Equal(t, "hello", decrypted)

	// The broadcast carries the plaintext payload on the room channel.
	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "room-r1", events[0].Channel)
	assert.Equal(t, "new-message", events[0].Event)

	var broadcast models.MessageResponse
	require.NoError(t, json.Unmarshal(events[0].Payload, &broadcast))
	require.NotNil(t, broadcast.Content)
	assert.Equal(t, "hello", *broadcast.Content)
	assert.Equal(t, "t1", broadcast.TempID)
	assert.Equal(t, sender.ID, broadcast.Sender.ID)
}

func TestPostMessageEmptyContentStoredNull(t *testing.T) {
	publisher := &fakePublisher{}
	service, _, repo, sender := newChatService(t, publisher)

	empty := ""
	response, err := service.PostMessage(context.Background(), "r1", sender.ID, &empty, "")
	require.NoError(t, err)
	assert.Nil(t, response.Content)

	stored, err := repo.FindMessageById(response.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Content)
}

func TestPostMessagePublishFailureIsSwallowed(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("transport down")}
	service, _, repo, sender := newChatService(t, publisher)

	content := "hello"
	response, err := service.PostMessage(context.Background(), "r1", sender.ID, &content, "t1")
	require.NoError(t, err, "persistence is the source of truth; broadcast is best-effort")

	_, err = repo.FindMessageById(response.ID)
	assert.NoError(t, err)
}

func TestGetRoomMessagesToleratesDecryptFailure(t *testing.T) {
	publisher := &fakePublisher{}
	service, _, _, sender := newChatService(t, publisher)

	good := "readable"
	_, err := service.PostMessage(context.Background(), "r1", sender.ID, &good, "")
	require.NoError(t, err)

	// A blob encrypted under a different key cannot be decrypted.
	foreign, err := crypto.NewCipher("other-secret").Encrypt("unreadable")
	require.NoError(t, err)
	_, err = service.PostMessage(context.Background(), "r1", sender.ID, nil, "")
	require.NoError(t, err)
	service.chatRepo.SaveMessage(&models.Message{RoomID: "r1", SenderID: sender.ID, Content: &foreign})

	messages, err := service.GetRoomMessages("r1")
	require.NoError(t, err, "one bad blob must not fail the whole listing")
	require.Len(t, messages, 3)

	require.NotNil(t, messages[0].Content)
	assert.Equal(t, "readable", *messages[0].Content)
	assert.Nil(t, messages[1].Content)
	assert.Nil(t, messages[2].Content, "undecryptable content surfaces as null")
}

func TestDeleteMessageForbiddenForNonSender(t *testing.T) {
	publisher := &fakePublisher{}
	service, _, repo, sender := newChatService(t, publisher)

	content := "hello"
	response, err := service.PostMessage(context.Background(), "r1", sender.ID, &content, "")
	require.NoError(t, err)

	err = service.DeleteMessage(context.Background(), response.ID, sender.ID+1)
	assert.ErrorIs(t, err, errs.ErrNotMessageSender)

	_, err = repo.FindMessageById(response.ID)
	assert.NoError(t, err, "a forbidden delete leaves the message persisted")
}

func TestDeleteMessageNotFound(t *testing.T) {
	publisher := &fakePublisher{}
	service, _, _, sender := newChatService(t, publisher)

	err := service.DeleteMessage(context.Background(), 999, sender.ID)
	assert.ErrorIs(t, err, errs.ErrMessageNotFound)
}

func TestDeleteMessagePublishesDeletionEvent(t *testing.T) {
	publisher := &fakePublisher{}
	service, _, repo, sender := newChatService(t, publisher)

	content := "hello"
	response, err := service.PostMessage(context.Background(), "r1", sender.ID, &content, "")
	require.NoError(t, err)

	require.NoError(t, service.DeleteMessage(context.Background(), response.ID, sender.ID))

	_, err = repo.FindMessageById(response.ID)
	assert.ErrorIs(t, err, errs.ErrMessageNotFound)

	events := publisher.published()
	require.Len(t, events, 2)
	deletion := events[1]
	assert.Equal(t, "room-r1", deletion.Channel)
	assert.Equal(t, "message-deleted", deletion.Event)
	assert.JSONEq(t, `{"id":`+jsonUint(response.ID)+`}`, string(deletion.Payload))
}

func jsonUint(v uint) string {
	body, _ := json.Marshal(v)
	return string(body)
}
