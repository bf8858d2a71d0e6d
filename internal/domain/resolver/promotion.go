package resolver

import (
	"fmt"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const pricePlaces = 2

var hundred = decimal.NewFromInt(100)

// InconsistentDataError reports flash sale rows that cannot be resolved to a single price.
type InconsistentDataError struct {
	ProductID uuid.UUID
	Reason    string
}

func (e *InconsistentDataError) Error() string {
	return fmt.Sprintf("inconsistent promotion data for product %s: %s", e.ProductID, e.Reason)
}

// PromotionState is the promotional status of a product at one instant.
type PromotionState struct {
	BoostActive     bool              `json:"boost_active"`
	FlashSaleActive bool              `json:"flash_sale_active"`
	FlashSale       *entity.FlashSale `json:"flash_sale,omitempty"`
	ListPrice       decimal.Decimal   `json:"list_price"`
	EffectivePrice  decimal.Decimal   `json:"effective_price"`
}

// ResolvePromotion computes the boost and flash sale state of product at now.
// Flash sales of other products are ignored. Flash sale pricing takes precedence
// over the list price; a product may be boosted and on sale at the same time.
func ResolvePromotion(product *entity.Product, flashSales []*entity.FlashSale, now time.Time) (PromotionState, error) {
	state := PromotionState{
		BoostActive:    IsBoostActive(product, now),
		ListPrice:      product.Price,
		EffectivePrice: product.Price,
	}

	var active *entity.FlashSale
	for _, sale := range flashSales {
		if sale == nil || sale.ProductID != product.ID || !sale.IsActive {
			continue
		}
		if reason := malformedSale(sale); reason != "" {
			return PromotionState{}, &InconsistentDataError{ProductID: product.ID, Reason: reason}
		}
		if !IsFlashSaleActive(sale, now) {
			continue
		}
		if active != nil {
			return PromotionState{}, &InconsistentDataError{
				ProductID: product.ID,
				Reason:    fmt.Sprintf("flash sales %s and %s overlap", active.ID, sale.ID),
			}
		}
		active = sale
	}

	if active != nil {
		state.FlashSaleActive = true
		state.FlashSale = active
		state.EffectivePrice = DiscountedPrice(product.Price, active)
	}

	return state, nil
}

// malformedSale describes why an active sale row cannot be priced, or returns "".
func malformedSale(sale *entity.FlashSale) string {
	switch {
	case !sale.StartDate.Before(sale.EndDate):
		return fmt.Sprintf("flash sale %s starts at or after its end", sale.ID)
	case !sale.DiscountType.IsValid():
		return fmt.Sprintf("flash sale %s has unknown discount type %q", sale.ID, sale.DiscountType)
	case !sale.DiscountValue.IsPositive():
		return fmt.Sprintf("flash sale %s has non-positive discount %s", sale.ID, sale.DiscountValue)
	default:
		return ""
	}
}

// IsBoostActive reports whether the product's boost covers now. The boosted flag
// alone is not enough: an expired boosted_until means the boost has lapsed.
func IsBoostActive(product *entity.Product, now time.Time) bool {
	return product.IsBoosted && product.BoostedUntil != nil && product.BoostedUntil.After(now)
}

// IsFlashSaleActive reports whether now falls inside the sale window. Both ends are inclusive.
func IsFlashSaleActive(sale *entity.FlashSale, now time.Time) bool {
	return sale.IsActive && !now.Before(sale.StartDate) && !now.After(sale.EndDate)
}

// DiscountedPrice applies a flash sale discount to price, never going below zero.
// The sale must have passed malformedSale.
func DiscountedPrice(price decimal.Decimal, sale *entity.FlashSale) decimal.Decimal {
	discounted := price.Sub(sale.DiscountValue)
	if sale.DiscountType == entity.DiscountPercentage {
		discounted = price.Mul(decimal.NewFromInt(1).Sub(sale.DiscountValue.Div(hundred)))
	}

	if discounted.IsNegative() {
		discounted = decimal.Zero
	}

	return discounted.Round(pricePlaces)
}
