package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll returns the catalog ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByVendor returns all products owned by a vendor.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// FindByIDs returns the products that still exist among ids. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// UpdateBoost sets the boost fields of a product.
	UpdateBoost(ctx context.Context, id uuid.UUID, isBoosted bool, boostedUntil *time.Time) error
}
