package websocket

import (
	"encoding/json"
	"fmt"
)

const (
	actionStart      = "match:start"
	actionMove       = "match:move"
	actionReset      = "match:reset"
	actionDifficulty = "match:difficulty"
	actionTallyReset = "match:tally:reset"
	actionState      = "match:state"
	actionError      = "error"
	actionIdentity   = "player"

	cookieAuthToken = "auth_token"
	queryParamToken = "token"

	sendBufferSize = 16
	maxMessageSize = 4096
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type StartPayload struct {
	Difficulty string `json:"difficulty,omitempty"`
}

type MovePayload struct {
	Cell *int `json:"cell"`
}

type DifficultyPayload struct {
	Difficulty string `json:"difficulty"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Error  string `json:"error"`
}

func encode(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
