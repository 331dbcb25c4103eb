// Package session persists the applied coupon across the page
// transition into the post-payment success view. The store replaces
// the browser's ambient session storage with an explicit, server-held
// record keyed by checkout session id.
package session

import (
	"context"
	"errors"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

var ErrNotFound = errors.New("no coupon stored for session")

// Store is defined by its consumers; Redis and in-memory
// implementations live alongside.
type Store interface {
	Get(ctx context.Context, sessionID string) (*domain.AppliedCoupon, error)
	Set(ctx context.Context, sessionID string, coupon *domain.AppliedCoupon) error
	Delete(ctx context.Context, sessionID string) error
}
