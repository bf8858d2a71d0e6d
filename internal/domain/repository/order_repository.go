package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderQuery narrows order listings at the storage level.
type OrderQuery struct {
	// Status limits results to one status when non-empty.
	Status entity.OrderStatus
}

// OrderRepository defines read access to orders and their items.
// Listings are ordered by order_date descending, then id.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDs returns the orders among ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Order, error)

	// FindByUser returns the orders placed by a customer.
	FindByUser(ctx context.Context, userID uuid.UUID, query OrderQuery) ([]*entity.Order, error)

	// FindByProductIDs returns the distinct orders containing at least one of the products.
	// Callers must not pass an empty slice.
	FindByProductIDs(ctx context.Context, productIDs []uuid.UUID, query OrderQuery) ([]*entity.Order, error)

	// FindAll returns every order.
	FindAll(ctx context.Context, query OrderQuery) ([]*entity.Order, error)

	// FindItemsByOrderIDs returns the items of the given orders.
	FindItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]*entity.OrderItem, error)

	// FindItemsByProductIDs returns every item referencing one of the products.
	FindItemsByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.OrderItem, error)
}
