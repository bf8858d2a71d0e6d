package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type promotionServiceFixtures struct {
	service       usecase.PromotionUsecase
	txManager     *mockRepo.MockTransactionManager
	promotionRepo *mockRepo.MockPromotionRepository
	productRepo   *mockRepo.MockProductRepository
	vendorRepo    *mockRepo.MockVendorRepository
	publisher     *mockService.MockEventPublisher
}

func createTestPromotionService(t *testing.T) promotionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	promotionRepo := mockRepo.NewMockPromotionRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return promotionServiceFixtures{
		service: NewPromotionService(PromotionServiceParams{
			TxManager:      txManager,
			PromotionRepo:  promotionRepo,
			ProductRepo:    productRepo,
			VendorRepo:     vendorRepo,
			EventPublisher: publisher,
			Clock:          newFixedClock(t),
			Logger:         newDiscardLogger(),
		}),
		txManager:     txManager,
		promotionRepo: promotionRepo,
		productRepo:   productRepo,
		vendorRepo:    vendorRepo,
		publisher:     publisher,
	}
}

// expectTransaction runs the transactional callback against repositories scoped to the
// returned factory, the way the gorm transaction manager does.
func (fx promotionServiceFixtures) expectTransaction(t *testing.T) (*mockRepo.MockPromotionRepository, *mockRepo.MockProductRepository) {
	txPromotionRepo := mockRepo.NewMockPromotionRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PromotionRepo().Return(txPromotionRepo).Maybe()
	factory.EXPECT().ProductRepo().Return(txProductRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txPromotionRepo, txProductRepo
}

func pendingRequest(durationDays int) *entity.BoostRequest {
	return &entity.BoostRequest{
		ID:           uuid.New(),
		ProductID:    uuid.New(),
		VendorID:     uuid.New(),
		PlanID:       uuid.New(),
		DurationDays: durationDays,
		Price:        decimal.RequireFromString("49.00"),
		Status:       entity.BoostStatusPending,
		CreatedAt:    testNow.AddDate(0, 0, -1),
	}
}

func TestPromotionService_ApproveBoostRequest_Success(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	request := pendingRequest(7)
	wantUntil := testNow.AddDate(0, 0, 7)

	txPromotionRepo, txProductRepo := fx.expectTransaction(t)
	txPromotionRepo.EXPECT().FindBoostRequestByID(ctx, request.ID).Return(request, nil)
	txProductRepo.EXPECT().FindByID(ctx, request.ProductID).Return(&entity.Product{ID: request.ProductID}, nil)
	txPromotionRepo.EXPECT().ResolveBoostRequest(ctx, request.ID, entity.BoostStatusApproved, testNow).Return(nil)
	txProductRepo.EXPECT().
		UpdateBoost(ctx, request.ProductID, true, mock.MatchedBy(func(until *time.Time) bool {
			return until != nil && until.Equal(wantUntil)
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPromotionEvent(ctx, mock.MatchedBy(func(e *service.PromotionEvent) bool {
			return e.Type == service.EventBoostApproved &&
				e.BoostRequestID == request.ID.String() &&
				e.BoostedUntil != nil && e.BoostedUntil.Equal(wantUntil)
		})).
		Return(nil)

	approved, err := fx.service.ApproveBoostRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoostStatusApproved, approved.Status)
	require.NotNil(t, approved.ResolvedAt)
	assert.Equal(t, testNow, *approved.ResolvedAt)
}

func TestPromotionService_ApproveTwice(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	request := pendingRequest(3)

	txPromotionRepo, txProductRepo := fx.expectTransaction(t)
	txPromotionRepo.EXPECT().FindBoostRequestByID(ctx, request.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.BoostRequest, error) {
			stored := *request

			return &stored, nil
		})
	txProductRepo.EXPECT().FindByID(ctx, request.ProductID).Return(&entity.Product{ID: request.ProductID}, nil).Once()
	txPromotionRepo.EXPECT().ResolveBoostRequest(ctx, request.ID, entity.BoostStatusApproved, testNow).
		RunAndReturn(func(context.Context, uuid.UUID, entity.BoostStatus, time.Time) error {
			request.Status = entity.BoostStatusApproved
			request.ResolvedAt = timePtr(testNow)

			return nil
		}).Once()
	txProductRepo.EXPECT().UpdateBoost(ctx, request.ProductID, true, mock.AnythingOfType("*time.Time")).Return(nil).Once()
	fx.publisher.EXPECT().PublishPromotionEvent(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.ApproveBoostRequest(ctx, request.ID)
	require.NoError(t, err)

	_, err = fx.service.ApproveBoostRequest(ctx, request.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyResolved)
}

func TestPromotionService_ApproveBoostRequest_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(promotionRepo *mockRepo.MockPromotionRepository, productRepo *mockRepo.MockProductRepository, request *entity.BoostRequest)
		wantErr error
	}{
		{
			name: "request missing",
			setup: func(promotionRepo *mockRepo.MockPromotionRepository, _ *mockRepo.MockProductRepository, request *entity.BoostRequest) {
				promotionRepo.EXPECT().FindBoostRequestByID(mock.Anything, request.ID).Return(nil, repository.ErrBoostRequestNotFound)
			},
			wantErr: domainerrors.ErrBoostRequestNotFound,
		},
		{
			name: "already rejected",
			setup: func(promotionRepo *mockRepo.MockPromotionRepository, _ *mockRepo.MockProductRepository, request *entity.BoostRequest) {
				request.Status = entity.BoostStatusRejected
				promotionRepo.EXPECT().FindBoostRequestByID(mock.Anything, request.ID).Return(request, nil)
			},
			wantErr: domainerrors.ErrAlreadyResolved,
		},
		{
			name: "product deleted",
			setup: func(promotionRepo *mockRepo.MockPromotionRepository, productRepo *mockRepo.MockProductRepository, request *entity.BoostRequest) {
				promotionRepo.EXPECT().FindBoostRequestByID(mock.Anything, request.ID).Return(request, nil)
				productRepo.EXPECT().FindByID(mock.Anything, request.ProductID).Return(nil, repository.ErrProductNotFound)
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name: "resolved concurrently",
			setup: func(promotionRepo *mockRepo.MockPromotionRepository, productRepo *mockRepo.MockProductRepository, request *entity.BoostRequest) {
				promotionRepo.EXPECT().FindBoostRequestByID(mock.Anything, request.ID).Return(request, nil)
				productRepo.EXPECT().FindByID(mock.Anything, request.ProductID).Return(&entity.Product{ID: request.ProductID}, nil)
				promotionRepo.EXPECT().
					ResolveBoostRequest(mock.Anything, request.ID, entity.BoostStatusApproved, testNow).
					Return(repository.ErrBoostRequestNotPending)
			},
			wantErr: domainerrors.ErrAlreadyResolved,
		},
		{
			name: "product removed before boost",
			setup: func(promotionRepo *mockRepo.MockPromotionRepository, productRepo *mockRepo.MockProductRepository, request *entity.BoostRequest) {
				promotionRepo.EXPECT().FindBoostRequestByID(mock.Anything, request.ID).Return(request, nil)
				productRepo.EXPECT().FindByID(mock.Anything, request.ProductID).Return(&entity.Product{ID: request.ProductID}, nil)
				promotionRepo.EXPECT().
					ResolveBoostRequest(mock.Anything, request.ID, entity.BoostStatusApproved, testNow).
					Return(nil)
				productRepo.EXPECT().
					UpdateBoost(mock.Anything, request.ProductID, true, mock.AnythingOfType("*time.Time")).
					Return(repository.ErrProductNotFound)
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromotionService(t)
			request := pendingRequest(7)
			txPromotionRepo, txProductRepo := fx.expectTransaction(t)
			tt.setup(txPromotionRepo, txProductRepo, request)

			approved, err := fx.service.ApproveBoostRequest(context.Background(), request.ID)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, approved)
			fx.publisher.AssertNotCalled(t, "PublishPromotionEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestPromotionService_ApproveBoostRequest_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	request := pendingRequest(1)

	txPromotionRepo, txProductRepo := fx.expectTransaction(t)
	txPromotionRepo.EXPECT().FindBoostRequestByID(ctx, request.ID).Return(request, nil)
	txProductRepo.EXPECT().FindByID(ctx, request.ProductID).Return(&entity.Product{ID: request.ProductID}, nil)
	txPromotionRepo.EXPECT().ResolveBoostRequest(ctx, request.ID, entity.BoostStatusApproved, testNow).Return(nil)
	txProductRepo.EXPECT().UpdateBoost(ctx, request.ProductID, true, mock.AnythingOfType("*time.Time")).Return(nil)
	fx.publisher.EXPECT().PublishPromotionEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	approved, err := fx.service.ApproveBoostRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoostStatusApproved, approved.Status)
}

func TestPromotionService_RejectBoostRequest(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	request := pendingRequest(7)

	txPromotionRepo, _ := fx.expectTransaction(t)
	txPromotionRepo.EXPECT().FindBoostRequestByID(ctx, request.ID).Return(request, nil)
	txPromotionRepo.EXPECT().ResolveBoostRequest(ctx, request.ID, entity.BoostStatusRejected, testNow).Return(nil)
	fx.publisher.EXPECT().
		PublishPromotionEvent(ctx, mock.MatchedBy(func(e *service.PromotionEvent) bool {
			return e.Type == service.EventBoostRejected && e.BoostedUntil == nil
		})).
		Return(nil)

	rejected, err := fx.service.RejectBoostRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoostStatusRejected, rejected.Status)
}

func TestPromotionService_ListBoostPlans(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	plans := []*entity.BoostPlan{{ID: uuid.New(), Name: "Week", DurationDays: 7, IsActive: true}}

	fx.promotionRepo.EXPECT().FindActiveBoostPlans(ctx).Return(plans, nil)

	got, err := fx.service.ListBoostPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, plans, got)
}

type boostRequestFixture struct {
	actor   entity.VendorActor
	product *entity.Product
	plan    *entity.BoostPlan
	vendor  *entity.Vendor
}

func newBoostRequestFixture() boostRequestFixture {
	vendorID := uuid.New()

	return boostRequestFixture{
		actor:   entity.VendorActor{ID: uuid.New(), VendorID: vendorID},
		product: newProduct("15.00", &vendorID),
		plan: &entity.BoostPlan{
			ID:           uuid.New(),
			Name:         "Two weeks",
			DurationDays: 14,
			Price:        decimal.RequireFromString("99.00"),
			IsActive:     true,
		},
		vendor: &entity.Vendor{ID: vendorID, StoreName: "Kedai"},
	}
}

func TestPromotionService_RequestBoost(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	f := newBoostRequestFixture()
	newID := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, f.product.ID).Return(f.product, nil)
	fx.promotionRepo.EXPECT().FindBoostPlanByID(mock.Anything, f.plan.ID).Return(f.plan, nil)
	fx.vendorRepo.EXPECT().FindByID(mock.Anything, f.vendor.ID).Return(f.vendor, nil)
	fx.promotionRepo.EXPECT().
		CreateBoostRequest(ctx, mock.AnythingOfType("*entity.BoostRequest")).
		Run(func(_ context.Context, request *entity.BoostRequest) {
			request.ID = newID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPromotionEvent(ctx, mock.MatchedBy(func(e *service.PromotionEvent) bool {
			return e.Type == service.EventBoostRequested && e.BoostRequestID == newID.String()
		})).
		Return(nil)

	request, err := fx.service.RequestBoost(ctx, f.actor, &usecase.RequestBoostInput{ProductID: f.product.ID, PlanID: f.plan.ID})
	require.NoError(t, err)
	assert.Equal(t, newID, request.ID)
	assert.Equal(t, entity.BoostStatusPending, request.Status)
	assert.Equal(t, 14, request.DurationDays)
	assert.True(t, f.plan.Price.Equal(request.Price))
	assert.Equal(t, f.vendor.ID, request.VendorID)
}

func TestPromotionService_RequestBoost_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *boostRequestFixture)
		wantErr error
	}{
		{
			name:    "product of another vendor",
			mutate:  func(f *boostRequestFixture) { f.product.VendorID = uuidPtr(uuid.New()) },
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name:    "platform product",
			mutate:  func(f *boostRequestFixture) { f.product.VendorID = nil },
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name:    "inactive plan",
			mutate:  func(f *boostRequestFixture) { f.plan.IsActive = false },
			wantErr: domainerrors.ErrBoostPlanNotFound,
		},
		{
			name:    "lapsed subscription",
			mutate:  func(f *boostRequestFixture) { f.vendor.SubscriptionEndDate = timePtr(testNow.AddDate(0, 0, -1)) },
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromotionService(t)
			f := newBoostRequestFixture()
			tt.mutate(&f)

			fx.productRepo.EXPECT().FindByID(mock.Anything, f.product.ID).Return(f.product, nil)
			fx.promotionRepo.EXPECT().FindBoostPlanByID(mock.Anything, f.plan.ID).Return(f.plan, nil)
			fx.vendorRepo.EXPECT().FindByID(mock.Anything, f.actor.VendorID).Return(f.vendor, nil)

			request, err := fx.service.RequestBoost(context.Background(), f.actor, &usecase.RequestBoostInput{ProductID: f.product.ID, PlanID: f.plan.ID})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, request)
		})
	}
}
