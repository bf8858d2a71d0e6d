package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type promotionService struct {
	txManager     repository.TransactionManager
	promotionRepo repository.PromotionRepository
	productRepo   repository.ProductRepository
	vendorRepo    repository.VendorRepository
	publisher     service.EventPublisher
	clock         service.Clock
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PromotionRepo  repository.PromotionRepository
	ProductRepo    repository.ProductRepository
	VendorRepo     repository.VendorRepository
	EventPublisher service.EventPublisher
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewPromotionService creates a new promotion service instance
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		txManager:     params.TxManager,
		promotionRepo: params.PromotionRepo,
		productRepo:   params.ProductRepo,
		vendorRepo:    params.VendorRepo,
		publisher:     params.EventPublisher,
		clock:         params.Clock,
		logger:        params.Logger,
	}
}

func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBoostPlans returns the active boost plans.
func (srv *promotionService) ListBoostPlans(ctx context.Context) ([]*entity.BoostPlan, error) {
	plans, err := srv.promotionRepo.FindActiveBoostPlans(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find boost plans")
	}

	return plans, nil
}

// RequestBoost validates ownership, plan and subscription, then files a pending request
// with the plan's duration and price snapshotted.
func (srv *promotionService) RequestBoost(ctx context.Context, actor entity.VendorActor, input *usecase.RequestBoostInput) (*entity.BoostRequest, error) {
	var (
		product *entity.Product
		plan    *entity.BoostPlan
		vendor  *entity.Vendor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = srv.productRepo.FindByID(gctx, input.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return errors.Wrap(err, "failed to find product")
	})
	g.Go(func() error {
		var err error
		plan, err = srv.promotionRepo.FindBoostPlanByID(gctx, input.PlanID)
		if errors.Is(err, repository.ErrBoostPlanNotFound) {
			return domainerrors.ErrBoostPlanNotFound.WrapMessage("boost plan does not exist")
		}

		return errors.Wrap(err, "failed to find boost plan")
	})
	g.Go(func() error {
		var err error
		vendor, err = srv.vendorRepo.FindByID(gctx, actor.VendorID)
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound.WrapMessage("vendor does not exist")
		}

		return errors.Wrap(err, "failed to find vendor")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	switch {
	case !product.IsOwnedBy(actor.VendorID):
		return nil, domainerrors.ErrProductNotFound.WrapMessage("product is not owned by vendor")
	case !plan.IsActive:
		return nil, domainerrors.ErrBoostPlanNotFound.WrapMessage("boost plan is not active")
	case !vendor.IsSubscriptionActive(now):
		return nil, domainerrors.ErrValidationFailed.WrapMessage("vendor subscription has lapsed")
	}

	request := &entity.BoostRequest{
		ProductID:    product.ID,
		VendorID:     actor.VendorID,
		PlanID:       plan.ID,
		DurationDays: plan.DurationDays,
		Price:        plan.Price,
		Status:       entity.BoostStatusPending,
		CreatedAt:    now,
	}
	if err := srv.promotionRepo.CreateBoostRequest(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to create boost request", slog.Any("productID", product.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create boost request")
	}

	srv.log(ctx).Info("Boost requested",
		slog.Any("boostRequestID", request.ID),
		slog.Any("productID", product.ID),
		slog.Any("vendorID", actor.VendorID),
	)
	srv.publish(ctx, service.EventBoostRequested, request, nil)

	return request, nil
}

// ApproveBoostRequest approves a pending request and boosts its product for the
// snapshotted duration. Both writes share one transaction.
func (srv *promotionService) ApproveBoostRequest(ctx context.Context, requestID uuid.UUID) (*entity.BoostRequest, error) {
	var boostedUntil time.Time

	request, err := srv.resolveRequest(ctx, requestID, entity.BoostStatusApproved,
		func(factory repository.RepositoryFactory, request *entity.BoostRequest, now time.Time) error {
			productRepo := factory.ProductRepo()
			if _, err := productRepo.FindByID(ctx, request.ProductID); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage("boosted product no longer exists")
				}

				return errors.Wrap(err, "failed to find product")
			}

			if err := factory.PromotionRepo().ResolveBoostRequest(ctx, request.ID, entity.BoostStatusApproved, now); err != nil {
				return err
			}

			boostedUntil = now.AddDate(0, 0, request.DurationDays)
			if err := productRepo.UpdateBoost(ctx, request.ProductID, true, &boostedUntil); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage("boosted product no longer exists")
				}

				return errors.Wrap(err, "failed to boost product")
			}

			return nil
		})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Boost request approved",
		slog.Any("boostRequestID", request.ID),
		slog.Any("productID", request.ProductID),
		slog.Time("boostedUntil", boostedUntil),
	)
	srv.publish(ctx, service.EventBoostApproved, request, &boostedUntil)

	return request, nil
}

// RejectBoostRequest rejects a pending request. The product is left untouched.
func (srv *promotionService) RejectBoostRequest(ctx context.Context, requestID uuid.UUID) (*entity.BoostRequest, error) {
	request, err := srv.resolveRequest(ctx, requestID, entity.BoostStatusRejected,
		func(factory repository.RepositoryFactory, request *entity.BoostRequest, now time.Time) error {
			return factory.PromotionRepo().ResolveBoostRequest(ctx, request.ID, entity.BoostStatusRejected, now)
		})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Boost request rejected", slog.Any("boostRequestID", request.ID))
	srv.publish(ctx, service.EventBoostRejected, request, nil)

	return request, nil
}

// resolveRequest loads a pending request inside a transaction and runs apply on it.
// A request that is, or concurrently becomes, resolved yields ErrAlreadyResolved.
func (srv *promotionService) resolveRequest(
	ctx context.Context,
	requestID uuid.UUID,
	status entity.BoostStatus,
	apply func(factory repository.RepositoryFactory, request *entity.BoostRequest, now time.Time) error,
) (*entity.BoostRequest, error) {
	now := srv.clock.Now()

	var resolved *entity.BoostRequest
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		request, err := factory.PromotionRepo().FindBoostRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrBoostRequestNotFound) {
				return domainerrors.ErrBoostRequestNotFound.WrapMessage("boost request does not exist")
			}

			return errors.Wrap(err, "failed to find boost request")
		}
		if !request.IsPending() {
			return domainerrors.ErrAlreadyResolved.WrapMessage("boost request is " + string(request.Status))
		}

		if err := apply(factory, request, now); err != nil {
			if errors.Is(err, repository.ErrBoostRequestNotPending) {
				return domainerrors.ErrAlreadyResolved.WrapMessage("boost request was resolved concurrently")
			}

			return err
		}

		request.Status = status
		request.ResolvedAt = &now
		resolved = request

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve boost request",
			slog.Any("boostRequestID", requestID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)

		return nil, err
	}

	return resolved, nil
}

// publish announces a committed change. Failures are logged and never undo the change.
func (srv *promotionService) publish(ctx context.Context, eventType string, request *entity.BoostRequest, boostedUntil *time.Time) {
	event := &service.PromotionEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           eventType,
		BoostRequestID: request.ID.String(),
		ProductID:      request.ProductID.String(),
		VendorID:       request.VendorID.String(),
		BoostedUntil:   boostedUntil,
		OccurredAt:     srv.clock.Now(),
	}

	if err := srv.publisher.PublishPromotionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish promotion event",
			slog.String("type", eventType),
			slog.Any("boostRequestID", request.ID),
			slog.Any("error", err),
		)
	}
}
