package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account of the catalog service.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
