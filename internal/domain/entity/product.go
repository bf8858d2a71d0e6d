package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item owned by at most one vendor.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	VendorID      *uuid.UUID      `json:"vendor_id,omitempty"` // nil means platform-owned.
	IsBoosted     bool            `json:"is_boosted"`
	BoostedUntil  *time.Time      `json:"boosted_until,omitempty"`
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsOwnedBy reports whether the product belongs to the given vendor.
func (p *Product) IsOwnedBy(vendorID uuid.UUID) bool {
	return p.VendorID != nil && *p.VendorID == vendorID
}
