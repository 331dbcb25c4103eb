package pricing

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

// Totals carries unrounded currency amounts. Rounding happens only at
// display/transmission time via Round2, never between computations, so
// rounding error cannot compound.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Shipping is free for every order.
const Shipping = 0.0

// Quote computes subtotal, coupon discount and total for the given
// items. Deterministic, no I/O. An empty cart quotes to zero; a price
// string that fails to parse counts as zero rather than failing the
// whole quote.
func Quote(items []domain.CartItem, coupon *domain.AppliedCoupon) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += UnitPrice(it.Product) * float64(it.Quantity)
	}

	var discount float64
	if coupon != nil && coupon.Discount > 0 {
		discount = subtotal * coupon.Discount / 100
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal + Shipping - discount,
	}
}

// UnitPrice parses a product's decimal price string. Malformed prices
// are a catalog data-quality problem, not a checkout failure: they are
// logged and priced at zero.
func UnitPrice(p domain.Product) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Price), 64)
	if err != nil {
		log.Printf("unparsable price %q for product %s, pricing as 0", p.Price, p.ID)
		return 0
	}
	return v
}

// Round2 rounds a currency amount to 2 decimal places for display or
// transmission.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns the totals with every amount rounded for display.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: Round2(t.Subtotal),
		Discount: Round2(t.Discount),
		Total:    Round2(t.Total),
	}
}
