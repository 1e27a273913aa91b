package event

import (
	"encoding/json"
	"fmt"
	"time"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change describes one successful write against a clinic resource.
type Change struct {
	Resource string    `json:"resource"`
	Action   Action    `json:"action"`
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
}

func NewChange(resource string, action Action, id string) Change {
	return Change{
		Resource: resource,
		Action:   action,
		ID:       id,
		At:       time.Now().UTC(),
	}
}

func Decode(payload []byte) (Change, error) {
	var c Change
	if err := json.Unmarshal(payload, &c); err != nil {
		return Change{}, fmt.Errorf("failed to decode change event: %w", err)
	}
	return c, nil
}

func (c Change) String() string {
	return fmt.Sprintf("%s %s %s", c.Resource, c.Action, c.ID)
}
