package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message sent to a user. It has no lifecycle coupling
// to payments; the REST layer manages these records directly.
type Notification struct {
	ID              uuid.UUID `json:"id"`
	Type            string    `json:"tipo"`
	Message         string    `json:"mensaje"`
	SentAt          time.Time `json:"fechaEnvio"`
	RecipientUserID uuid.UUID `json:"destinatarioId"`
}
