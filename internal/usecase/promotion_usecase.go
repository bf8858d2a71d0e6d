package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestBoostInput is a vendor's boost request for one of their products.
type RequestBoostInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	PlanID    uuid.UUID `json:"plan_id" validate:"required"`
}

// PromotionUsecase defines boost plan and boost request operations.
type PromotionUsecase interface {
	// ListBoostPlans returns the purchasable boost plans.
	ListBoostPlans(ctx context.Context) ([]*entity.BoostPlan, error)

	// RequestBoost files a pending boost request on behalf of a vendor.
	RequestBoost(ctx context.Context, actor entity.VendorActor, input *RequestBoostInput) (*entity.BoostRequest, error)

	// ApproveBoostRequest approves a pending request and boosts its product.
	ApproveBoostRequest(ctx context.Context, requestID uuid.UUID) (*entity.BoostRequest, error)

	// RejectBoostRequest rejects a pending request.
	RejectBoostRequest(ctx context.Context, requestID uuid.UUID) (*entity.BoostRequest, error)
}
