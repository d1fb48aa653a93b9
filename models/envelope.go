package models

import "encoding/json"

// Envelope is the wrapper shape every backend endpoint returns.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
