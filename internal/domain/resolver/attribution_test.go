package resolver

import (
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownActor struct{ entity.Customer }

type sharedOrder struct {
	order    *entity.Order
	items    []*entity.OrderItem
	owners   ProductVendors
	vendor1  uuid.UUID
	vendor2  uuid.UUID
	customer uuid.UUID
}

// newSharedOrder builds an order with V1 2x10.00 and V2 1x20.00.
func newSharedOrder(status entity.OrderStatus) sharedOrder {
	v1, v2 := uuid.New(), uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		TotalAmount: decimal.RequireFromString("40.00"),
		Status:      status,
		OrderDate:   testNow.Add(-time.Hour),
		UpdatedAt:   testNow.Add(-time.Hour),
	}

	return sharedOrder{
		order: order,
		items: []*entity.OrderItem{
			{ID: uuid.New(), OrderID: order.ID, ProductID: p1, ProductName: "Teh", Quantity: 2, PriceAtPurchase: decimal.RequireFromString("10.00")},
			{ID: uuid.New(), OrderID: order.ID, ProductID: p2, ProductName: "Roti", Quantity: 1, PriceAtPurchase: decimal.RequireFromString("20.00")},
		},
		owners:   ProductVendors{p1: v1, p2: v2},
		vendor1:  v1,
		vendor2:  v2,
		customer: order.UserID,
	}
}

func TestCanView(t *testing.T) {
	s := newSharedOrder(entity.OrderStatusPending)

	tests := []struct {
		name  string
		actor entity.Actor
		want  bool
	}{
		{name: "owning customer", actor: entity.Customer{ID: s.customer}, want: true},
		{name: "other customer", actor: entity.Customer{ID: uuid.New()}, want: false},
		{name: "first vendor", actor: entity.VendorActor{ID: uuid.New(), VendorID: s.vendor1}, want: true},
		{name: "second vendor", actor: entity.VendorActor{ID: uuid.New(), VendorID: s.vendor2}, want: true},
		{name: "unrelated vendor", actor: entity.VendorActor{ID: uuid.New(), VendorID: uuid.New()}, want: false},
		{name: "vendor whose user placed the order", actor: entity.VendorActor{ID: s.customer, VendorID: uuid.New()}, want: false},
		{name: "admin", actor: entity.Admin{ID: uuid.New()}, want: true},
		{name: "unknown actor", actor: unknownActor{entity.Customer{ID: s.customer}}, want: false},
		{name: "nil actor", actor: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(s.order, s.items, s.owners, tt.actor))
		})
	}
}

func TestCanView_IgnoresItemsOfOtherOrdersAndDeletedProducts(t *testing.T) {
	s := newSharedOrder(entity.OrderStatusPending)
	vendor := entity.VendorActor{ID: uuid.New(), VendorID: uuid.New()}

	foreignProduct := uuid.New()
	s.owners[foreignProduct] = vendor.VendorID
	items := []*entity.OrderItem{
		{ID: uuid.New(), OrderID: uuid.New(), ProductID: foreignProduct, Quantity: 1},
		{ID: uuid.New(), OrderID: s.order.ID, ProductID: uuid.New(), Quantity: 1},
	}

	assert.False(t, CanView(s.order, items, s.owners, vendor))
	assert.False(t, CanView(nil, items, s.owners, entity.Admin{ID: uuid.New()}))
}

func TestVisibleItems(t *testing.T) {
	s := newSharedOrder(entity.OrderStatusPending)

	v1Items := VisibleItems(s.items, s.owners, entity.VendorActor{ID: uuid.New(), VendorID: s.vendor1})
	require.Len(t, v1Items, 1)
	assert.Equal(t, "Teh", v1Items[0].ProductName)

	assert.Len(t, VisibleItems(s.items, s.owners, entity.Customer{ID: s.customer}), 2)
	assert.Len(t, VisibleItems(s.items, s.owners, entity.Admin{ID: uuid.New()}), 2)
	assert.Empty(t, VisibleItems(s.items, s.owners, unknownActor{}))
}

func TestNewProductVendors(t *testing.T) {
	vendorID := uuid.New()
	owned := product("1.00")
	owned.VendorID = &vendorID
	platform := product("1.00")

	owners := NewProductVendors([]*entity.Product{owned, platform, nil})

	assert.Equal(t, ProductVendors{owned.ID: vendorID}, owners)
}

func TestFilterRetained(t *testing.T) {
	order := func(status entity.OrderStatus, updatedAgo time.Duration) *entity.Order {
		return &entity.Order{ID: uuid.New(), Status: status, OrderDate: testNow.Add(-updatedAgo), UpdatedAt: testNow.Add(-updatedAgo)}
	}

	deliveredOld := order(entity.OrderStatusDelivered, 5*24*time.Hour)
	deliveredRecent := order(entity.OrderStatusDelivered, 24*time.Hour)
	deliveredAtBoundary := order(entity.OrderStatusDelivered, RetentionWindow)
	deliveredJustPast := order(entity.OrderStatusDelivered, RetentionWindow+time.Millisecond)
	pendingOld := order(entity.OrderStatusPending, 30*24*time.Hour)
	cancelledOld := order(entity.OrderStatusCancelled, 30*24*time.Hour)

	retained := FilterRetained([]*entity.Order{
		deliveredOld, deliveredRecent, deliveredAtBoundary, deliveredJustPast, pendingOld, cancelledOld,
	}, testNow)

	assert.Equal(t, []*entity.Order{deliveredRecent, deliveredAtBoundary, pendingOld, cancelledOld}, retained)
}

func TestSortOrdersAndPaginate(t *testing.T) {
	sameDate := testNow.Add(-2 * time.Hour)
	a := &entity.Order{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), OrderDate: sameDate}
	b := &entity.Order{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), OrderDate: sameDate}
	newest := &entity.Order{ID: uuid.New(), OrderDate: testNow}
	oldest := &entity.Order{ID: uuid.New(), OrderDate: testNow.Add(-48 * time.Hour)}

	orders := []*entity.Order{oldest, b, newest, a}
	SortOrders(orders)
	assert.Equal(t, []*entity.Order{newest, a, b, oldest}, orders)

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []*entity.Order
	}{
		{name: "first page", limit: 2, offset: 0, want: []*entity.Order{newest, a}},
		{name: "second page", limit: 2, offset: 2, want: []*entity.Order{b, oldest}},
		{name: "partial page", limit: 3, offset: 3, want: []*entity.Order{oldest}},
		{name: "past the end", limit: 2, offset: 10, want: []*entity.Order{}},
		{name: "no limit", limit: 0, offset: 1, want: []*entity.Order{a, b, oldest}},
		{name: "negative offset", limit: 1, offset: -4, want: []*entity.Order{newest}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(orders, tt.limit, tt.offset))
		})
	}
}
