package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog record owned by exactly one user. Ownership is part of
// the record's identity: every read and write is scoped by OwnerID.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
