package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/resolver"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	clock       service.Clock
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns one page of the orders attributed to actor.
func (srv *orderService) ListOrders(ctx context.Context, actor entity.Actor, filter usecase.OrderFilter) (*usecase.OrderPage, error) {
	limit, offset := normalizePage(filter.Limit, filter.Offset)

	orders, err := srv.attributedOrders(ctx, actor, repository.OrderQuery{Status: filter.Status})
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("role", roleOf(actor)), slog.Any("error", err))

		return nil, err
	}

	if !filter.All {
		orders = resolver.FilterRetained(orders, srv.clock.Now())
	}
	resolver.SortOrders(orders)

	return &usecase.OrderPage{
		Orders: resolver.Paginate(orders, limit, offset),
		Total:  len(orders),
		Limit:  limit,
		Offset: offset,
	}, nil
}

// attributedOrders fetches the orders an actor owns, before retention and paging.
func (srv *orderService) attributedOrders(ctx context.Context, actor entity.Actor, query repository.OrderQuery) ([]*entity.Order, error) {
	switch a := actor.(type) {
	case entity.Customer:
		orders, err := srv.orderRepo.FindByUser(ctx, a.ID, query)

		return orders, errors.Wrap(err, "failed to find customer orders")
	case entity.VendorActor:
		products, err := srv.productRepo.FindByVendor(ctx, a.VendorID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find vendor products")
		}
		if len(products) == 0 {
			return []*entity.Order{}, nil
		}

		orders, err := srv.orderRepo.FindByProductIDs(ctx, productIDs(products), query)

		return orders, errors.Wrap(err, "failed to find vendor orders")
	case entity.Admin:
		orders, err := srv.orderRepo.FindAll(ctx, query)

		return orders, errors.Wrap(err, "failed to find orders")
	default:
		return []*entity.Order{}, nil
	}
}

// GetOrder returns the order and the items the actor may see.
func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	var (
		order *entity.Order
		items []*entity.OrderItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		order, err = srv.orderRepo.FindByID(gctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound.WrapMessage("order does not exist")
		}

		return errors.Wrap(err, "failed to find order")
	})
	g.Go(func() error {
		var err error
		items, err = srv.orderRepo.FindItemsByOrderIDs(gctx, []uuid.UUID{orderID})

		return errors.Wrap(err, "failed to find order items")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	owners := resolver.ProductVendors{}
	if ids := itemProductIDs(items); len(ids) > 0 {
		products, err := srv.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find order products")
		}
		owners = resolver.NewProductVendors(products)
	}

	if !resolver.CanView(order, items, owners, actor) {
		srv.log(ctx).Info("Order access denied", slog.Any("orderID", orderID), slog.Any("role", roleOf(actor)))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("actor may not view order")
	}

	return &usecase.OrderDetail{
		Order: order,
		Items: resolver.VisibleItems(items, owners, actor),
	}, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = usecase.DefaultOrderLimit
	}
	limit = min(limit, usecase.MaxOrderLimit)

	return limit, max(offset, 0)
}

func roleOf(actor entity.Actor) entity.Role {
	if actor == nil {
		return ""
	}

	return actor.Role()
}

func productIDs(products []*entity.Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}

// itemProductIDs returns the distinct product ids referenced by items.
func itemProductIDs(items []*entity.OrderItem) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}
