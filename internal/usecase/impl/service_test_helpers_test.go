package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	mockService "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFixedClock returns a clock mock pinned to testNow.
func newFixedClock(t *testing.T) *mockService.MockClock {
	clock := mockService.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	return clock
}

func newProduct(price string, vendorID *uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      "Product " + price,
		Price:     decimal.RequireFromString(price),
		Stock:     10,
		VendorID:  vendorID,
		CreatedAt: testNow.Add(-24 * time.Hour),
	}
}

func newOrder(userID uuid.UUID, status entity.OrderStatus, age time.Duration) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: decimal.RequireFromString("10.00"),
		Status:      status,
		OrderDate:   testNow.Add(-age),
		UpdatedAt:   testNow.Add(-age),
	}
}

func newItem(order *entity.Order, product *entity.Product, qty int) *entity.OrderItem {
	return &entity.OrderItem{
		ID:              uuid.New(),
		OrderID:         order.ID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		Quantity:        qty,
		PriceAtPurchase: product.Price,
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

func timePtr(t time.Time) *time.Time {
	return &t
}
