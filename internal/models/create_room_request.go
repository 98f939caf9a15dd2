package models

type CreateRoomRequestBody struct {
	Name string `json:"name"`
}
