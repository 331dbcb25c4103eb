package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MatyAlts/synapsse-storefront/internal/cart"
	"github.com/MatyAlts/synapsse-storefront/internal/cartsync"
	"github.com/MatyAlts/synapsse-storefront/internal/catalog"
	"github.com/MatyAlts/synapsse-storefront/internal/checkout"
	"github.com/MatyAlts/synapsse-storefront/internal/coupon"
	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/MatyAlts/synapsse-storefront/internal/session"
)

// SessionHeader carries the checkout session id. The server mints one
// on first contact and echoes it back on every checkout response.
const SessionHeader = "X-Checkout-Session"

// PaymentService is the payment-preference collaborator as the API
// needs it.
type PaymentService interface {
	CreatePreference(ctx context.Context, pref domain.PreferenceRequest) (string, error)
}

type API struct {
	catalog   catalog.RepoInterface
	store     *cart.Store
	sync      *cartsync.Client
	validator *coupon.Validator
	sessions  *checkout.Registry
	coupons   session.Store
	redeemer  *checkout.Redeemer
	payments  PaymentService
	locks     *keyedMutex
	appURL    string
}

func NewAPI(
	cat catalog.RepoInterface,
	store *cart.Store,
	syncClient *cartsync.Client,
	validator *coupon.Validator,
	sessions *checkout.Registry,
	coupons session.Store,
	payments PaymentService,
	appURL string,
) *API {
	return &API{
		catalog:   cat,
		store:     store,
		sync:      syncClient,
		validator: validator,
		sessions:  sessions,
		coupons:   coupons,
		redeemer:  checkout.NewRedeemer(coupons, validator),
		payments:  payments,
		locks:     newKeyedMutex(),
		appURL:    appURL,
	}
}

func (a *API) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/products", a.ListProducts)
	r.Get("/products/{id}", a.GetProduct)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", a.GetCart)
		r.Get("/sync-log", a.SyncLog)
		r.Post("/items", a.AddItem)
		r.Post("/items/{product_id}/increase", a.IncreaseQuantity)
		r.Post("/items/{product_id}/decrease", a.DecreaseQuantity)
		r.Delete("/items/{product_id}", a.RemoveItem)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", a.GetCheckout)
		r.Put("/shipping", a.SetShipping)
		r.Post("/next", a.NextStep)
		r.Post("/back", a.PrevStep)
		r.Post("/coupon", a.ApplyCoupon)
		r.Delete("/coupon", a.RemoveCoupon)
		r.Post("/preference", a.CreatePreference)
		r.Post("/success", a.PaymentSuccess)
	})

	return r
}

// bearerToken pulls the session token from the Authorization header.
// No token means the cart stays local-only.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func (a *API) session(r *http.Request) *checkout.Session {
	return a.sessions.Get(r.Context(), r.Header.Get(SessionHeader), bearerToken(r))
}
