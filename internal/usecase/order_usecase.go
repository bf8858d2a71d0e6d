package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Pagination defaults for order listings.
const (
	DefaultOrderLimit = 20
	MaxOrderLimit     = 100
)

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status entity.OrderStatus `query:"status" validate:"omitempty,order_status"`
	// All includes delivered orders past the retention window.
	All    bool `query:"all"`
	Limit  int  `query:"limit" validate:"gte=0"`
	Offset int  `query:"offset" validate:"gte=0"`
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Orders []*entity.Order `json:"orders"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// OrderDetail is an order with the items the actor may see.
type OrderDetail struct {
	Order *entity.Order       `json:"order"`
	Items []*entity.OrderItem `json:"items"`
}

// OrderUsecase defines the order attribution surfaces.
type OrderUsecase interface {
	// ListOrders returns the orders attributed to actor, newest first.
	ListOrders(ctx context.Context, actor entity.Actor, filter OrderFilter) (*OrderPage, error)

	// GetOrder returns a single order if actor may view it.
	GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*OrderDetail, error)
}
