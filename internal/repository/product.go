package repository

import (
	"context"

	"github.com/google/uuid"

	"product-catalog/internal/domain"
)

// ProductRepository exposes ownership-scoped persistence for Product records.
// Every operation that takes an ownerID expresses the ownership check as a
// query predicate; rows belonging to other owners behave as if absent.
type ProductRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, product *domain.Product) error
	GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
