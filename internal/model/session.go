package model

import (
	"time"

	"github.com/google/uuid"
)

// Session records which role and identity is currently acting. It lives
// for one run of the tool and is destroyed on logout. The identity is
// trusted as-is; there is no real authentication.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Identity  string    `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
}
