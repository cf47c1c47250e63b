// Package pricing contains the pure price arithmetic shared by the
// catalog and cart layers.
package pricing

import (
	"fmt"
	"math"

	"github.com/gamevault/game-store/internal/apperr"
	"github.com/gamevault/game-store/internal/models"
)

// DiscountPercentage returns the rounded percentage saved when discount is
// set, nil when it is not. A discount above the original price is rejected.
func DiscountPercentage(original float64, discount *float64) (*int, error) {
	if discount == nil {
		return nil, nil
	}
	if *discount > original {
		return nil, fmt.Errorf("discount price %.2f higher than original %.2f: %w", *discount, original, apperr.ErrInvalidPricing)
	}
	// A free game has no computable percentage.
	if original <= 0 {
		return nil, nil
	}
	pct := int(math.Round((original - *discount) / original * 100))
	return &pct, nil
}

// CurrentPrice prefers the discount price when one is set.
func CurrentPrice(g models.Game) float64 {
	if g.DiscountPrice != nil {
		return *g.DiscountPrice
	}
	return g.OriginalPrice
}

func IsOnSale(g models.Game) bool {
	return g.DiscountPrice != nil && *g.DiscountPrice < g.OriginalPrice
}
