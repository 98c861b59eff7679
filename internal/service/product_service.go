package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"product-catalog/internal/domain"
	"product-catalog/internal/repository"
)

// ProductInput carries the client-supplied fields for a new product. The owner
// is never part of the input; it always comes from the resolved identity.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
}

// ProductUpdate is a partial update: only non-nil fields are applied.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
}

// ProductService coordinates ownership-scoped product operations.
type ProductService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input ProductInput) (*domain.Product, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, ownerID uuid.UUID, input ProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		OwnerID:     ownerID,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error) {
	return s.products.ListByOwner(ctx, ownerID)
}

func (s *productService) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Product, error) {
	product, err := s.products.GetByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, ownerID, id uuid.UUID, update ProductUpdate) (*domain.Product, error) {
	product, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Message: "name is required"}
		}
		product.Name = name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		if err := validatePrice(*update.Price); err != nil {
			return nil, err
		}
		product.Price = *update.Price
	}

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.products.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return &ValidationError{Field: "price", Message: "price must be zero or positive"}
	}
	return nil
}
