package resolver

import (
	"math/rand/v2"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationLimit caps the recommendations surface.
const RecommendationLimit = 12

// ClassifiedProduct pairs a product with its resolved promotion state.
type ClassifiedProduct struct {
	Product   *entity.Product `json:"product"`
	Promotion PromotionState  `json:"promotion"`
}

// Issue records a product whose promotion data could not be resolved.
type Issue struct {
	ProductID uuid.UUID
	Err       error
}

// Classification is the bucketed catalog. Every visible product appears in exactly one bucket.
type Classification struct {
	FlashSale []ClassifiedProduct
	Boosted   []ClassifiedProduct
	General   []ClassifiedProduct
	Issues    []Issue
}

// Classify drops products in hidden categories and sorts the rest into buckets,
// preserving input order. Products with inconsistent flash sale data are priced at
// list price, placed in General, and reported in Issues.
func Classify(products []*entity.Product, flashSales []*entity.FlashSale, index *CategoryIndex, now time.Time) Classification {
	result := Classification{
		FlashSale: []ClassifiedProduct{},
		Boosted:   []ClassifiedProduct{},
		General:   []ClassifiedProduct{},
	}

	salesByProduct := make(map[uuid.UUID][]*entity.FlashSale)
	for _, sale := range flashSales {
		if sale == nil {
			continue
		}
		salesByProduct[sale.ProductID] = append(salesByProduct[sale.ProductID], sale)
	}

	for _, product := range products {
		if product == nil || !index.IsRefVisible(product.CategoryID) {
			continue
		}

		state, err := ResolvePromotion(product, salesByProduct[product.ID], now)
		if err != nil {
			result.Issues = append(result.Issues, Issue{ProductID: product.ID, Err: err})
			result.General = append(result.General, ClassifiedProduct{
				Product: product,
				Promotion: PromotionState{
					BoostActive:    IsBoostActive(product, now),
					ListPrice:      product.Price,
					EffectivePrice: product.Price,
				},
			})

			continue
		}

		classified := ClassifiedProduct{Product: product, Promotion: state}
		switch {
		case state.FlashSaleActive:
			result.FlashSale = append(result.FlashSale, classified)
		case state.BoostActive:
			result.Boosted = append(result.Boosted, classified)
		default:
			result.General = append(result.General, classified)
		}
	}

	return result
}

// Recommend returns up to RecommendationLimit products from general in random order.
// The input slice is not modified.
func Recommend(general []ClassifiedProduct, rng *rand.Rand) []ClassifiedProduct {
	shuffled := make([]ClassifiedProduct, len(general))
	copy(shuffled, general)

	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > RecommendationLimit {
		shuffled = shuffled[:RecommendationLimit]
	}

	return shuffled
}
