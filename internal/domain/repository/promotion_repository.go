package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for promotion persistence.
var (
	// ErrBoostPlanNotFound is returned when a boost plan is not found.
	ErrBoostPlanNotFound = errors.New("boost plan not found")
	// ErrBoostRequestNotFound is returned when a boost request is not found.
	ErrBoostRequestNotFound = errors.New("boost request not found")
	// ErrBoostRequestNotPending is returned when a status transition finds the request already resolved.
	ErrBoostRequestNotPending = errors.New("boost request is not pending")
)

// PromotionRepository defines the operations for flash sales and boosts.
type PromotionRepository interface {
	// FindActiveFlashSales returns every flash sale flagged active, regardless of its window.
	FindActiveFlashSales(ctx context.Context) ([]*entity.FlashSale, error)

	// FindFlashSalesByProduct returns all flash sales of a product.
	FindFlashSalesByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.FlashSale, error)

	// FindActiveBoostPlans returns purchasable plans ordered by duration.
	FindActiveBoostPlans(ctx context.Context) ([]*entity.BoostPlan, error)

	// FindBoostPlanByID retrieves a plan by its unique ID.
	FindBoostPlanByID(ctx context.Context, id uuid.UUID) (*entity.BoostPlan, error)

	// CreateBoostRequest persists a new boost request.
	CreateBoostRequest(ctx context.Context, request *entity.BoostRequest) error

	// FindBoostRequestByID retrieves a boost request by its unique ID.
	FindBoostRequestByID(ctx context.Context, id uuid.UUID) (*entity.BoostRequest, error)

	// ResolveBoostRequest moves a pending request to status. It returns
	// ErrBoostRequestNotPending when the request is no longer pending.
	ResolveBoostRequest(ctx context.Context, id uuid.UUID, status entity.BoostStatus, resolvedAt time.Time) error
}
