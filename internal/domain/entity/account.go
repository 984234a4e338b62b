package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the minimal profile slice the settlement engine needs: who an
// identity is and which commercial role it plays. Full account management
// lives outside this module.
type Account struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
