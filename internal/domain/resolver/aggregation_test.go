package resolver

import (
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_RevenueSplitsByOwnItems(t *testing.T) {
	s := newSharedOrder(entity.OrderStatusDelivered)

	var p1, p2 uuid.UUID
	for id, vendor := range s.owners {
		if vendor == s.vendor1 {
			p1 = id
		} else {
			p2 = id
		}
	}
	v1Products := []*entity.Product{{ID: p1, Name: "Teh", Stock: 50, VendorID: &s.vendor1}}
	v2Products := []*entity.Product{{ID: p2, Name: "Roti", Stock: 50, VendorID: &s.vendor2}}
	orders := []*entity.Order{s.order}

	v1 := Aggregate(s.vendor1, v1Products, orders, s.items)
	v2 := Aggregate(s.vendor2, v2Products, orders, s.items)

	assert.Equal(t, "20.00", v1.TotalRevenue.StringFixed(2))
	assert.Equal(t, "20.00", v2.TotalRevenue.StringFixed(2))
	assert.Equal(t, 1, v1.TotalOrders)
	assert.Equal(t, 1, v2.TotalOrders)
	assert.Equal(t, 0, v1.PendingOrders)
}

func TestAggregate_CountsAndLowStock(t *testing.T) {
	vendorID := uuid.New()
	mk := func(name string, stock int) *entity.Product {
		return &entity.Product{ID: uuid.New(), Name: name, Stock: stock, VendorID: &vendorID, Price: decimal.NewFromInt(5)}
	}
	zebra := mk("Zebra mug", 2)
	apple := mk("Apple jam", 2)
	edge := mk("Edge case", LowStockThreshold)
	empty := mk("Empty shelf", 0)
	plenty := mk("Plenty", LowStockThreshold+1)
	products := []*entity.Product{zebra, apple, edge, empty, plenty}

	order := func(status entity.OrderStatus) *entity.Order {
		return &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: status, TotalAmount: decimal.NewFromInt(999)}
	}
	pending := order(entity.OrderStatusPending)
	delivered := order(entity.OrderStatusDelivered)
	cancelled := order(entity.OrderStatusCancelled)
	foreign := order(entity.OrderStatusDelivered)

	item := func(o *entity.Order, productID uuid.UUID, qty int, price string) *entity.OrderItem {
		return &entity.OrderItem{ID: uuid.New(), OrderID: o.ID, ProductID: productID, Quantity: qty, PriceAtPurchase: decimal.RequireFromString(price)}
	}
	items := []*entity.OrderItem{
		item(pending, zebra.ID, 1, "5.00"),
		item(delivered, apple.ID, 3, "4.50"),
		item(delivered, uuid.New(), 1, "100.00"),
		item(cancelled, plenty.ID, 2, "5.00"),
		item(foreign, uuid.New(), 1, "70.00"),
	}

	stats := Aggregate(vendorID, products, []*entity.Order{pending, delivered, cancelled, foreign, delivered}, items)

	assert.Equal(t, 5, stats.ProductCount)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, "13.50", stats.TotalRevenue.StringFixed(2))

	require.Len(t, stats.LowStock, 4)
	assert.Equal(t, []LowStockItem{
		{ID: empty.ID, Name: "Empty shelf", Stock: 0},
		{ID: apple.ID, Name: "Apple jam", Stock: 2},
		{ID: zebra.ID, Name: "Zebra mug", Stock: 2},
		{ID: edge.ID, Name: "Edge case", Stock: LowStockThreshold},
	}, stats.LowStock)
}

func TestAggregate_NoProducts(t *testing.T) {
	stats := Aggregate(uuid.New(), nil, nil, nil)

	assert.Equal(t, EmptyVendorStats(), stats)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.NotNil(t, stats.LowStock)
}

func TestAggregate_IgnoresProductsOfOtherVendors(t *testing.T) {
	vendorID, otherVendor := uuid.New(), uuid.New()
	own := &entity.Product{ID: uuid.New(), Name: "Kopi", Stock: 20, VendorID: &vendorID}
	stray := &entity.Product{ID: uuid.New(), Name: "Stray", Stock: 20, VendorID: &otherVendor}

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusDelivered}
	strayOnly := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending}
	items := []*entity.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: own.ID, Quantity: 2, PriceAtPurchase: decimal.NewFromInt(3)},
		{ID: uuid.New(), OrderID: order.ID, ProductID: stray.ID, Quantity: 1, PriceAtPurchase: decimal.NewFromInt(40)},
		{ID: uuid.New(), OrderID: strayOnly.ID, ProductID: stray.ID, Quantity: 1, PriceAtPurchase: decimal.NewFromInt(40)},
	}

	stats := Aggregate(vendorID, []*entity.Product{own, stray}, []*entity.Order{order, strayOnly}, items)

	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 0, stats.PendingOrders)
	assert.Equal(t, "6.00", stats.TotalRevenue.StringFixed(2))
}
