package pricing

import (
	"testing"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func item(price string, qty int) domain.CartItem {
	return domain.CartItem{
		Product:  domain.Product{ID: price, Title: "p", Price: price},
		Quantity: qty,
	}
}

func TestQuote_TwentyPercentCoupon(t *testing.T) {
	items := []domain.CartItem{item("10.00", 2)}
	coupon := &domain.AppliedCoupon{Code: "SAVE20", Discount: 20}

	totals := Quote(items, coupon)

	assert.InDelta(t, 20.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 4.00, totals.Discount, 1e-9)
	assert.InDelta(t, 16.00, totals.Total, 1e-9)
}

func TestQuote_NoCoupon(t *testing.T) {
	items := []domain.CartItem{item("10.00", 2), item("3.50", 3)}

	totals := Quote(items, nil)

	assert.InDelta(t, 30.50, totals.Subtotal, 1e-9)
	assert.Zero(t, totals.Discount)
	assert.InDelta(t, totals.Subtotal, totals.Total, 1e-9)
}

func TestQuote_ZeroPercentCouponGivesNoDiscount(t *testing.T) {
	items := []domain.CartItem{item("10.00", 1)}
	coupon := &domain.AppliedCoupon{Code: "NOPE", Discount: 0}

	totals := Quote(items, coupon)

	assert.Zero(t, totals.Discount)
	assert.InDelta(t, 10.00, totals.Total, 1e-9)
}

func TestQuote_EmptyCart(t *testing.T) {
	totals := Quote(nil, &domain.AppliedCoupon{Code: "SAVE20", Discount: 20})

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Discount)
	assert.Zero(t, totals.Total)
}

func TestQuote_MalformedPriceCountsAsZero(t *testing.T) {
	items := []domain.CartItem{item("not-a-price", 3), item("5.00", 1)}

	totals := Quote(items, nil)

	assert.InDelta(t, 5.00, totals.Subtotal, 1e-9)
}

// total == subtotal - discount must hold for any valid pair.
func TestQuote_TotalIdentity(t *testing.T) {
	carts := [][]domain.CartItem{
		{item("0.01", 1)},
		{item("19.99", 3), item("7.77", 7)},
		{item("100.00", 1), item("0.10", 99)},
	}
	coupons := []*domain.AppliedCoupon{
		nil,
		{Code: "A", Discount: 10},
		{Code: "B", Discount: 33.33},
		{Code: "C", Discount: 100},
	}

	for _, items := range carts {
		for _, c := range coupons {
			totals := Quote(items, c)
			assert.InDelta(t, totals.Subtotal-totals.Discount, totals.Total, 1e-9)
		}
	}
}

func TestQuote_RoundingOnlyAtDisplay(t *testing.T) {
	// 3 x 0.10 with 33.33% off: intermediate amounts keep full
	// precision, rounding happens once in Rounded().
	items := []domain.CartItem{item("0.10", 3)}
	coupon := &domain.AppliedCoupon{Code: "X", Discount: 33.33}

	totals := Quote(items, coupon)
	assert.InDelta(t, 0.3*33.33/100, totals.Discount, 1e-9)

	rounded := totals.Rounded()
	assert.InDelta(t, 0.30, rounded.Subtotal, 1e-9)
	assert.InDelta(t, 0.10, rounded.Discount, 1e-9)
	assert.InDelta(t, 0.20, rounded.Total, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 16.00, Round2(15.999999), 1e-9)
	assert.InDelta(t, 0.35, Round2(0.346), 1e-9)
	assert.InDelta(t, -2.50, Round2(-2.499999), 1e-9)
}
