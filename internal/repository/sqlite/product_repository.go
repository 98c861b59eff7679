package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"product-catalog/internal/domain"
	"product-catalog/internal/repository"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price REAL NOT NULL,
	owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

var productIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);`,
	`CREATE INDEX IF NOT EXISTS idx_products_owner_id ON products(owner_id);`,
}

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProductsTable); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	for _, ddl := range productIndexes {
		if _, err := r.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create product index: %w", err)
		}
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO products (id, name, description, price, owner_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		product.ID.String(),
		product.Name,
		product.Description,
		product.Price,
		product.OwnerID.String(),
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, description, price, owner_id, created_at, updated_at
FROM products
WHERE id = ? AND owner_id = ?`,
		id.String(),
		ownerID.String(),
	)
	return scanProduct(row)
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, description, price, owner_id, created_at, updated_at
FROM products
WHERE owner_id = ?
ORDER BY created_at, id`,
		ownerID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE products
SET name = ?, description = ?, price = ?, updated_at = ?
WHERE id = ? AND owner_id = ?`,
		product.Name,
		product.Description,
		product.Price,
		product.UpdatedAt,
		product.ID.String(),
		product.OwnerID.String(),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update product: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM products
WHERE id = ? AND owner_id = ?`,
		id.String(),
		ownerID.String(),
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete product: %w", repository.ErrNotFound)
	}
	return nil
}

func scanProduct(row interface {
	Scan(dest ...any) error
}) (*domain.Product, error) {
	var (
		product domain.Product
		id      string
		ownerID string
	)
	if err := row.Scan(
		&id,
		&product.Name,
		&product.Description,
		&product.Price,
		&ownerID,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get product: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse product id: %w", err)
	}
	parsedOwner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("parse product owner id: %w", err)
	}
	product.ID = parsedID
	product.OwnerID = parsedOwner
	return &product, nil
}
