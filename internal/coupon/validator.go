package coupon

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Service is the coupon backend as this package needs it.
// Consumers define this interface, not the HTTP implementation.
type Service interface {
	Validate(ctx context.Context, code string) (*domain.CouponValidation, error)
	MarkUsed(ctx context.Context, code string) error
}

// Result of a validation attempt. When Applicable is false the caller
// must clear any previously applied coupon; Message is always safe to
// show to the user.
type Result struct {
	Applicable bool                  `json:"applicable"`
	Coupon     *domain.AppliedCoupon `json:"coupon,omitempty"`
	Message    string                `json:"message"`
}

type Validator struct {
	svc Service
	sfg singleflight.Group // collapses concurrent validates of one code

	mu     sync.Mutex
	marked map[string]bool // codes already sent to MarkUsed
}

func NewValidator(svc Service) *Validator {
	return &Validator{
		svc:    svc,
		marked: make(map[string]bool),
	}
}

// Validate asks the coupon service about a code and interprets the
// answer. Only a response with a non-empty code, the explicit valid
// signal and a positive discount percentage is applicable; anything
// else, including transport errors, comes back as a rejection message.
func (v *Validator) Validate(ctx context.Context, code string) Result {
	code = Normalize(code)
	if code == "" {
		return Result{Applicable: false, Message: "enter a coupon code"}
	}

	resp, err, _ := v.sfg.Do(code, func() (interface{}, error) {
		return v.svc.Validate(ctx, code)
	})
	if err != nil {
		log.Printf("coupon validate error for %s: %v", code, err)
		return Result{Applicable: false, Message: "could not validate the coupon, try again"}
	}

	val, _ := resp.(*domain.CouponValidation)
	if val == nil {
		return Result{Applicable: false, Message: "coupon is not valid"}
	}
	if val.Code == "" || !val.Valid || val.DiscountPercentage <= 0 {
		msg := val.Message
		if msg == "" {
			msg = "coupon is not valid"
		}
		return Result{Applicable: false, Message: msg}
	}

	return Result{
		Applicable: true,
		Coupon:     &domain.AppliedCoupon{Code: code, Discount: val.DiscountPercentage},
		Message:    val.Message,
	}
}

// MarkUsed tells the coupon service the code was consumed by a
// completed order. Fire-and-forget: runs at most once per code,
// failures are logged and never retried. The returned error only tells
// the caller whether the attempt landed; nothing downstream may block
// on it.
func (v *Validator) MarkUsed(ctx context.Context, code string) error {
	code = Normalize(code)
	if code == "" {
		return nil
	}

	v.mu.Lock()
	if v.marked[code] {
		v.mu.Unlock()
		return nil
	}
	v.marked[code] = true
	v.mu.Unlock()

	if err := v.svc.MarkUsed(ctx, code); err != nil {
		log.Printf("mark coupon %s used failed: %v", code, err)
		return err
	}
	return nil
}

// Normalize trims and upper-cases a coupon code the way the storefront
// input does.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
