package checkout

import (
	"context"
	"errors"
	"log"

	"github.com/MatyAlts/synapsse-storefront/internal/session"
)

// CouponMarker is satisfied by the coupon validator.
type CouponMarker interface {
	MarkUsed(ctx context.Context, code string) error
}

// Redeemer is the one-shot consumer run by the post-payment success
// view: read the coupon persisted for the session, mark it used, and
// clear the record only once the mark lands. A missing record means a
// couponless order or an already-redeemed one; both are fine.
type Redeemer struct {
	store  session.Store
	marker CouponMarker
}

func NewRedeemer(store session.Store, marker CouponMarker) *Redeemer {
	return &Redeemer{store: store, marker: marker}
}

// Redeem returns the redeemed code and whether a coupon was consumed.
func (r *Redeemer) Redeem(ctx context.Context, sessionID string) (string, bool) {
	coupon, err := r.store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return "", false
	}
	if err != nil {
		log.Printf("coupon redeem: session read failed: %v", err)
		return "", false
	}

	if err := r.marker.MarkUsed(ctx, coupon.Code); err != nil {
		// keep the record; the failure was already logged and is
		// never retried automatically
		return "", false
	}

	if err := r.store.Delete(ctx, sessionID); err != nil {
		log.Printf("coupon redeem: session clear failed: %v", err)
	}
	return coupon.Code, true
}
