package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/resolver"

	"github.com/google/uuid"
)

// HomeFeed is the storefront landing page at one instant.
type HomeFeed struct {
	FlashSale   []resolver.ClassifiedProduct `json:"flash_sale"`
	Boosted     []resolver.ClassifiedProduct `json:"boosted"`
	Recommended []resolver.ClassifiedProduct `json:"recommended"`
	GeneratedAt time.Time                    `json:"generated_at"`
}

// ProductDetail is a single product with its resolved promotion.
type ProductDetail struct {
	Product   *entity.Product         `json:"product"`
	Promotion resolver.PromotionState `json:"promotion"`
}

// CatalogUsecase defines the public browsing surfaces.
type CatalogUsecase interface {
	// GetHome classifies the catalog and picks shuffled recommendations from the general bucket.
	GetHome(ctx context.Context) (*HomeFeed, error)

	// GetCategoryTree returns the category tree with hidden nodes removed.
	GetCategoryTree(ctx context.Context) ([]*resolver.CategoryNode, error)

	// GetProduct returns a product and its promotion state. Products in a hidden
	// category are reported as not found.
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetail, error)
}
