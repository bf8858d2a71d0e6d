package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when a vendor is not found.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines read access to vendors.
type VendorRepository interface {
	// FindByID retrieves a vendor by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindByUserID retrieves the vendor linked to a user account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
}
