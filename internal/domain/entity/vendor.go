package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is the seller profile linked to a user account.
type Vendor struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"user_id"`
	StoreName           string     `json:"store_name"`
	IsVerified          bool       `json:"is_verified"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// IsSubscriptionActive reports whether the vendor subscription covers now.
// A missing end date means the subscription never lapses.
func (v *Vendor) IsSubscriptionActive(now time.Time) bool {
	return v.SubscriptionEndDate == nil || v.SubscriptionEndDate.After(now)
}
