package resolver

import (
	"cmp"
	"slices"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the highest stock level reported as low.
const LowStockThreshold = 5

// LowStockItem is a product running out of stock.
type LowStockItem struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Stock int       `json:"stock"`
}

// VendorStats summarizes a vendor's catalog and sales.
type VendorStats struct {
	ProductCount  int             `json:"product_count"`
	TotalOrders   int             `json:"total_orders"`
	PendingOrders int             `json:"pending_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	LowStock      []LowStockItem  `json:"low_stock"`
}

// EmptyVendorStats is the result for a vendor without products.
func EmptyVendorStats() VendorStats {
	return VendorStats{
		TotalRevenue: decimal.Zero,
		LowStock:     []LowStockItem{},
	}
}

// Aggregate computes the dashboard of vendorID over its products. Orders count when the
// vendor may view them; revenue only sums the vendor's own lines of delivered orders,
// never the order total.
func Aggregate(vendorID uuid.UUID, vendorProducts []*entity.Product, orders []*entity.Order, items []*entity.OrderItem) VendorStats {
	stats := EmptyVendorStats()
	stats.ProductCount = len(vendorProducts)

	for _, p := range vendorProducts {
		if p.Stock <= LowStockThreshold {
			stats.LowStock = append(stats.LowStock, LowStockItem{ID: p.ID, Name: p.Name, Stock: p.Stock})
		}
	}

	slices.SortStableFunc(stats.LowStock, func(a, b LowStockItem) int {
		if c := cmp.Compare(a.Stock, b.Stock); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	owners := NewProductVendors(vendorProducts)
	actor := entity.VendorActor{VendorID: vendorID}

	itemsByOrder := make(map[uuid.UUID][]*entity.OrderItem)
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	seen := make(map[uuid.UUID]struct{}, len(orders))
	for _, order := range orders {
		if _, dup := seen[order.ID]; dup {
			continue
		}
		lines := itemsByOrder[order.ID]
		if !CanView(order, lines, owners, actor) {
			continue
		}
		seen[order.ID] = struct{}{}

		stats.TotalOrders++
		if order.Status == entity.OrderStatusPending {
			stats.PendingOrders++
		}
		if order.Status == entity.OrderStatusDelivered {
			for _, line := range VisibleItems(lines, owners, actor) {
				stats.TotalRevenue = stats.TotalRevenue.Add(line.LineTotal())
			}
		}
	}

	return stats
}
