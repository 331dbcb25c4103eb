package domain

// AppliedCoupon is the session-scoped record of a validated coupon.
// Discount is a percentage in [0,100].
type AppliedCoupon struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// CouponValidation is the wire shape of the coupon service's validate
// response. Valid is the explicit validity signal; a response is only
// treated as applicable when Code is non-empty, Valid is set and
// DiscountPercentage is positive.
type CouponValidation struct {
	Code               string  `json:"code"`
	Email              string  `json:"email"`
	Message            string  `json:"message"`
	Valid              bool    `json:"valid"`
	IsNew              bool    `json:"isNew"`
	ExpiresAt          string  `json:"expiresAt"`
	DiscountPercentage float64 `json:"discountPercentage"`
}
