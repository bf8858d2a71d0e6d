package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"

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

type catalogService struct {
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	promotionRepo repository.PromotionRepository
	clock         service.Clock
	newRand       func() *rand.Rand
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo  repository.CategoryRepository
	ProductRepo   repository.ProductRepository
	PromotionRepo repository.PromotionRepository
	Clock         service.Clock
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:  params.CategoryRepo,
		productRepo:   params.ProductRepo,
		promotionRepo: params.PromotionRepo,
		clock:         params.Clock,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		logger: params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetHome loads a catalog snapshot and classifies it at the current instant.
func (srv *catalogService) GetHome(ctx context.Context) (*usecase.HomeFeed, error) {
	var (
		categories []*entity.Category
		products   []*entity.Product
		flashSales []*entity.FlashSale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = srv.categoryRepo.FindAll(gctx)

		return errors.Wrap(err, "failed to load categories")
	})
	g.Go(func() error {
		var err error
		products, err = srv.productRepo.FindAll(gctx)

		return errors.Wrap(err, "failed to load products")
	})
	g.Go(func() error {
		var err error
		flashSales, err = srv.promotionRepo.FindActiveFlashSales(gctx)

		return errors.Wrap(err, "failed to load flash sales")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load catalog snapshot", slog.Any("error", err))

		return nil, err
	}

	now := srv.clock.Now()
	classification := resolver.Classify(products, flashSales, resolver.BuildIndex(categories), now)
	for _, issue := range classification.Issues {
		srv.log(ctx).Warn("Product has inconsistent promotion data",
			slog.Any("productID", issue.ProductID),
			slog.Any("error", issue.Err),
		)
	}

	srv.log(ctx).Debug("Classified catalog",
		slog.Int("flashSale", len(classification.FlashSale)),
		slog.Int("boosted", len(classification.Boosted)),
		slog.Int("general", len(classification.General)),
	)

	return &usecase.HomeFeed{
		FlashSale:   classification.FlashSale,
		Boosted:     classification.Boosted,
		Recommended: resolver.Recommend(classification.General, srv.newRand()),
		GeneratedAt: now,
	}, nil
}

// GetCategoryTree returns the public category tree.
func (srv *catalogService) GetCategoryTree(ctx context.Context) ([]*resolver.CategoryNode, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	return resolver.BuildIndex(categories).VisibleTree(), nil
}

// GetProduct resolves a single product's promotion state.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetail, error) {
	var (
		product    *entity.Product
		categories []*entity.Category
		flashSales []*entity.FlashSale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = srv.productRepo.FindByID(gctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return errors.Wrap(err, "failed to find product")
	})
	g.Go(func() error {
		var err error
		categories, err = srv.categoryRepo.FindAll(gctx)

		return errors.Wrap(err, "failed to load categories")
	})
	g.Go(func() error {
		var err error
		flashSales, err = srv.promotionRepo.FindFlashSalesByProduct(gctx, productID)

		return errors.Wrap(err, "failed to load flash sales")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := resolver.BuildIndex(categories)
	if product.CategoryID != nil && !index.IsKnown(*product.CategoryID) {
		srv.log(ctx).Warn("Product references unknown category",
			slog.Any("productID", productID),
			slog.Any("categoryID", *product.CategoryID),
		)
	}
	if !index.IsRefVisible(product.CategoryID) {
		srv.log(ctx).Debug("Product hidden by its category", slog.Any("productID", productID))

		return nil, domainerrors.ErrProductNotFound.WrapMessage("product category is hidden")
	}

	state, err := resolver.ResolvePromotion(product, flashSales, srv.clock.Now())
	if err != nil {
		var inconsistent *resolver.InconsistentDataError
		if errors.As(err, &inconsistent) {
			srv.log(ctx).Warn("Product has inconsistent promotion data", slog.Any("productID", productID), slog.Any("error", err))

			return nil, domainerrors.ErrInconsistentData.WrapMessage(inconsistent.Reason)
		}

		return nil, errors.Wrap(err, "failed to resolve promotion")
	}

	return &usecase.ProductDetail{Product: product, Promotion: state}, nil
}
