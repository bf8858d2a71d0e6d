package usecase

import (
	"context"

	"marketplace/internal/domain/resolver"

	"github.com/google/uuid"
)

// VendorUsecase defines the vendor dashboard operations.
type VendorUsecase interface {
	// AggregateVendor computes dashboard statistics for a vendor.
	AggregateVendor(ctx context.Context, vendorID uuid.UUID) (*resolver.VendorStats, error)
}
