package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/resolver"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceFixtures struct {
	service     usecase.VendorUsecase
	vendorRepo  *mockRepo.MockVendorRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	return vendorServiceFixtures{
		service: NewVendorService(VendorServiceParams{
			VendorRepo:  vendorRepo,
			ProductRepo: productRepo,
			OrderRepo:   orderRepo,
			Logger:      newDiscardLogger(),
		}),
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func TestVendorService_AggregateVendor_UnknownVendor(t *testing.T) {
	fx := createTestVendorService(t)
	vendorID := uuid.New()

	fx.vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(nil, repository.ErrVendorNotFound)
	fx.productRepo.EXPECT().FindByVendor(mock.Anything, vendorID).Return(nil, nil).Maybe()

	stats, err := fx.service.AggregateVendor(context.Background(), vendorID)
	require.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
	assert.Nil(t, stats)
}

func TestVendorService_AggregateVendor_NoProducts(t *testing.T) {
	fx := createTestVendorService(t)
	vendorID := uuid.New()

	fx.vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
	fx.productRepo.EXPECT().FindByVendor(mock.Anything, vendorID).Return(nil, nil)

	stats, err := fx.service.AggregateVendor(context.Background(), vendorID)
	require.NoError(t, err)
	assert.Equal(t, resolver.EmptyVendorStats(), *stats)
	fx.orderRepo.AssertNotCalled(t, "FindByProductIDs", mock.Anything, mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "FindItemsByProductIDs", mock.Anything, mock.Anything)
}

func TestVendorService_AggregateVendor_SharedOrderSplitsRevenue(t *testing.T) {
	s := newSharedOrderFixture()
	pending := newOrder(uuid.New(), entity.OrderStatusPending, 2*time.Hour)
	pendingItem := newItem(pending, s.products[0], 1)

	tests := []struct {
		name        string
		vendorID    uuid.UUID
		product     *entity.Product
		orders      []*entity.Order
		items       []*entity.OrderItem
		wantRevenue string
		wantOrders  int
		wantPending int
	}{
		{
			name:        "first vendor",
			vendorID:    s.vendor1,
			product:     s.products[0],
			orders:      []*entity.Order{s.order, pending},
			items:       []*entity.OrderItem{s.items[0], pendingItem},
			wantRevenue: "20.00",
			wantOrders:  2,
			wantPending: 1,
		},
		{
			name:        "second vendor",
			vendorID:    s.vendor2,
			product:     s.products[1],
			orders:      []*entity.Order{s.order},
			items:       []*entity.OrderItem{s.items[1]},
			wantRevenue: "20.00",
			wantOrders:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVendorService(t)
			ids := []uuid.UUID{tt.product.ID}

			fx.vendorRepo.EXPECT().FindByID(mock.Anything, tt.vendorID).Return(&entity.Vendor{ID: tt.vendorID}, nil)
			fx.productRepo.EXPECT().FindByVendor(mock.Anything, tt.vendorID).Return([]*entity.Product{tt.product}, nil)
			fx.orderRepo.EXPECT().FindByProductIDs(mock.Anything, ids, repository.OrderQuery{}).Return(tt.orders, nil)
			fx.orderRepo.EXPECT().FindItemsByProductIDs(mock.Anything, ids).Return(tt.items, nil)

			stats, err := fx.service.AggregateVendor(context.Background(), tt.vendorID)
			require.NoError(t, err)
			assert.Equal(t, 1, stats.ProductCount)
			assert.Equal(t, tt.wantOrders, stats.TotalOrders)
			assert.Equal(t, tt.wantPending, stats.PendingOrders)
			assert.Equal(t, tt.wantRevenue, stats.TotalRevenue.StringFixed(2))
		})
	}
}
