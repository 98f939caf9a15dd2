package models

type SendMessageRequestBody struct {
	RoomID  string  `json:"room_id" binding:"required"`
	Content *string `json:"content"`
	TempID  string  `json:"temp_id"`
}
