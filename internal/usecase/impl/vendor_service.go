package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/resolver"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type vendorService struct {
	vendorRepo  repository.VendorRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo  repository.VendorRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewVendorService creates a new vendor service instance
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:  params.VendorRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AggregateVendor computes dashboard statistics over the vendor's products and their orders.
func (srv *vendorService) AggregateVendor(ctx context.Context, vendorID uuid.UUID) (*resolver.VendorStats, error) {
	var products []*entity.Product

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := srv.vendorRepo.FindByID(gctx, vendorID)
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound.WrapMessage("vendor does not exist")
		}

		return errors.Wrap(err, "failed to find vendor")
	})
	g.Go(func() error {
		var err error
		products, err = srv.productRepo.FindByVendor(gctx, vendorID)

		return errors.Wrap(err, "failed to find vendor products")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		stats := resolver.EmptyVendorStats()

		return &stats, nil
	}

	var (
		orders []*entity.Order
		items  []*entity.OrderItem
	)
	ids := productIDs(products)

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = srv.orderRepo.FindByProductIDs(gctx, ids, repository.OrderQuery{})

		return errors.Wrap(err, "failed to find vendor orders")
	})
	g.Go(func() error {
		var err error
		items, err = srv.orderRepo.FindItemsByProductIDs(gctx, ids)

		return errors.Wrap(err, "failed to find vendor order items")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load vendor orders", slog.Any("vendorID", vendorID), slog.Any("error", err))

		return nil, err
	}

	stats := resolver.Aggregate(vendorID, products, orders, items)
	srv.log(ctx).Debug("Aggregated vendor stats",
		slog.Any("vendorID", vendorID),
		slog.Int("products", stats.ProductCount),
		slog.Int("orders", stats.TotalOrders),
	)

	return &stats, nil
}
