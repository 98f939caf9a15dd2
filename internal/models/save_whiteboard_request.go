package models

import "encoding/json"

type SaveWhiteboardRequestBody struct {
	Elements json.RawMessage `json:"elements"`
}
