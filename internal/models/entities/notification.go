package entities

import (
	"time"

	"hangar-next/mxops/internal/constants"
)

// Notification is a derived proactive alert. The set is regenerated
// wholesale on every mutation cycle; IDs are stable so external read
// markers survive regeneration.
type Notification struct {
	ID              string              `json:"id"`
	Type            constants.AlertType `json:"type"`
	Message         string              `json:"message"`
	RelatedEntity   string              `json:"relatedEntity"`
	RelatedEntityID string              `json:"relatedEntityId"`
	SentAt          time.Time           `json:"sentAt"`
	ActionRequired  string              `json:"actionRequired,omitempty"`
}
