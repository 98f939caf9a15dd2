package enums

const (
	SOCKET_EVENT_NEW_MESSAGE       = "new-message"
	SOCKET_EVENT_MESSAGE_DELETED   = "message-deleted"
	SOCKET_EVENT_WHITEBOARD_UPDATE = "update"

	// Payload of a whiteboard update that tells clients to re-fetch
	// the snapshot instead of carrying it inline.
	WHITEBOARD_ACTION_REFRESH = "refresh"
)
