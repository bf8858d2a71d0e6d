package resolver

import (
	"bytes"
	"slices"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RetentionWindow is how long a delivered order stays on default listings after its last update.
const RetentionWindow = 72 * time.Hour

// ProductVendors maps a product id to the vendor owning it. Platform-owned and
// deleted products are absent.
type ProductVendors map[uuid.UUID]uuid.UUID

// NewProductVendors builds the ownership map from products.
func NewProductVendors(products []*entity.Product) ProductVendors {
	owners := make(ProductVendors, len(products))
	for _, p := range products {
		if p == nil || p.VendorID == nil {
			continue
		}
		owners[p.ID] = *p.VendorID
	}

	return owners
}

// CanView decides whether actor may see order. items may contain rows of other
// orders; only the order's own items are considered.
func CanView(order *entity.Order, items []*entity.OrderItem, owners ProductVendors, actor entity.Actor) bool {
	if order == nil {
		return false
	}

	switch a := actor.(type) {
	case entity.Customer:
		return order.UserID == a.ID
	case entity.VendorActor:
		for _, item := range items {
			if item.OrderID != order.ID {
				continue
			}
			if vendorID, ok := owners[item.ProductID]; ok && vendorID == a.VendorID {
				return true
			}
		}

		return false
	case entity.Admin:
		return true
	default:
		return false
	}
}

// VisibleItems returns the items of an order the actor may see. Vendors see only
// lines for their own products; customers and admins see every line.
func VisibleItems(items []*entity.OrderItem, owners ProductVendors, actor entity.Actor) []*entity.OrderItem {
	switch a := actor.(type) {
	case entity.Customer, entity.Admin:
		return items
	case entity.VendorActor:
		visible := make([]*entity.OrderItem, 0, len(items))
		for _, item := range items {
			if vendorID, ok := owners[item.ProductID]; ok && vendorID == a.VendorID {
				visible = append(visible, item)
			}
		}

		return visible
	default:
		return []*entity.OrderItem{}
	}
}

// IsRetained reports whether an order shows on default listings at now. Only delivered
// orders expire, and only once their last update is older than RetentionWindow.
func IsRetained(order *entity.Order, now time.Time) bool {
	if order.Status != entity.OrderStatusDelivered {
		return true
	}

	return !order.UpdatedAt.Before(now.Add(-RetentionWindow))
}

// FilterRetained drops delivered orders past the retention window.
func FilterRetained(orders []*entity.Order, now time.Time) []*entity.Order {
	retained := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if IsRetained(order, now) {
			retained = append(retained, order)
		}
	}

	return retained
}

// SortOrders orders by order_date descending, breaking ties by id so pages are stable.
func SortOrders(orders []*entity.Order) {
	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		if c := b.OrderDate.Compare(a.OrderDate); c != 0 {
			return c
		}

		return bytes.Compare(a.ID[:], b.ID[:])
	})
}

// Paginate returns the window [offset, offset+limit). A non-positive limit returns
// everything from offset.
func Paginate[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}

	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return rows[offset:end]
}
