package checkout

import (
	"context"
	"log"
	"sync"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/google/uuid"
)

// ProfileSource loads the authenticated user's saved address for
// prefilling the shipping form. Optional collaborator.
type ProfileSource interface {
	Profile(ctx context.Context, token string) (domain.ShippingInfo, error)
}

// Session is one checkout in progress: the wizard plus the coupon
// applied to it. The coupon lives here, not in ambient storage, and is
// cleared on removal or failed validation.
type Session struct {
	ID     string
	Wizard *Wizard

	mu     sync.Mutex
	coupon *domain.AppliedCoupon
}

func (s *Session) ApplyCoupon(c *domain.AppliedCoupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = c
}

func (s *Session) ClearCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = nil
}

func (s *Session) Coupon() *domain.AppliedCoupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coupon == nil {
		return nil
	}
	c := *s.coupon
	return &c
}

// Registry keeps the live checkout sessions by id.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	profiles ProfileSource
}

func NewRegistry(profiles ProfileSource) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		profiles: profiles,
	}
}

// Get returns the session for id, creating it when id is unknown or
// empty. A new session starts at Summary; when a session token is
// present and a profile source is wired, the shipping form is seeded
// from the user's saved address. Prefill failure is not an error, the
// form just starts empty.
func (r *Registry) Get(ctx context.Context, id, token string) *Session {
	r.mu.Lock()
	if id != "" {
		if s, ok := r.sessions[id]; ok {
			r.mu.Unlock()
			return s
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	s := &Session{ID: id, Wizard: NewWizard()}
	r.sessions[id] = s
	r.mu.Unlock()

	if token != "" && r.profiles != nil {
		if info, err := r.profiles.Profile(ctx, token); err != nil {
			log.Printf("shipping prefill skipped: %v", err)
		} else {
			s.Wizard.SetShipping(info)
		}
	}
	return s
}

// Drop forgets a session, e.g. after a completed purchase.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
