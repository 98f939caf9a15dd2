package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidParams      = Error("invalid params")
	ErrUnauthorized       = Error("unauthorized")
	ErrForbidden          = Error("forbidden")

	ErrRoomNotFound     = Error("room not found")
	ErrMessageNotFound  = Error("message not found")
	ErrRoomNameRequired = Error("room name is required")
	ErrNotRoomMember    = Error("you are not a member of this room")
	ErrNotMessageSender = Error("only the sender can delete a message")
	ErrElementsRequired = Error("elements are required")
	ErrInvalidRoomId    = Error("invalid room id")
	ErrInvalidMessageId = Error("invalid message id")

	ErrDecryptFailed = Error("message decryption failed")
	ErrPublishFailed = Error("event publish failed")
	ErrSaveFailed    = Error("persistence write failed")

	ErrUserAlreadyExists = Error("user already exists")
	ErrUserNotFound      = Error("user not found")
	ErrWrongPassword     = Error("wrong password")
	ErrInvalidToken      = Error("invalid token")
	ErrInvalidEmail      = Error("invalid email")
	ErrInvalidPassword   = Error("invalid password")
	ErrFirstName         = Error("first name is empty or too short")
	ErrLastName          = Error("last name is empty or too short")
)
