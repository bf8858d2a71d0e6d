package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how a flash sale discount value is applied.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// IsValid checks if the DiscountType is a valid value.
func (d DiscountType) IsValid() bool {
	switch d {
	case DiscountPercentage, DiscountFixedAmount:
		return true
	default:
		return false
	}
}

// FlashSale is a time-bounded price override for a single product.
type FlashSale struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	IsActive      bool            `json:"is_active"`
	StockCap      *int            `json:"stock_cap,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BoostPlan is a purchasable featured-placement package.
type BoostPlan struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	DurationDays int             `json:"duration_days"`
	Price        decimal.Decimal `json:"price"`
	IsActive     bool            `json:"is_active"`
}

// BoostStatus is the approval state of a boost request.
type BoostStatus string

const (
	BoostStatusPending  BoostStatus = "pending"
	BoostStatusApproved BoostStatus = "approved"
	BoostStatusRejected BoostStatus = "rejected"
)

// BoostRequest is a vendor's request to boost a product. Duration and price are
// snapshotted from the plan at request time.
type BoostRequest struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	VendorID     uuid.UUID       `json:"vendor_id"`
	PlanID       uuid.UUID       `json:"plan_id"`
	DurationDays int             `json:"duration_days"`
	Price        decimal.Decimal `json:"price"`
	Status       BoostStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	ResolvedAt   *time.Time      `json:"resolved_at,omitempty"`
}

// IsPending reports whether the request still awaits a decision.
func (r *BoostRequest) IsPending() bool {
	return r.Status == BoostStatusPending
}
