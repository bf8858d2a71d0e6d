package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for browsing. Visibility is per row and is never inherited.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"` // nil for top-level categories; may dangle after deletes.
	IsVisible bool       `json:"is_visible"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
