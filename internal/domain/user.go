package domain

import "github.com/google/uuid"

// User is an account holder. Users are managed independently; deleting a
// user has no cascading effect on payments.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"nombre"`
	Email string    `json:"email"`
}
