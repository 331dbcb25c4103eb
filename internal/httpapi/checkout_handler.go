package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/MatyAlts/synapsse-storefront/internal/checkout"
	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/MatyAlts/synapsse-storefront/internal/pricing"
)

type CheckoutStateDTO struct {
	SessionID string                `json:"session_id"`
	Step      int                   `json:"step"`
	StepName  string                `json:"step_name"`
	Shipping  domain.ShippingInfo   `json:"shipping"`
	Coupon    *domain.AppliedCoupon `json:"coupon,omitempty"`
	Totals    pricing.Totals        `json:"totals"`
	Errors    map[string]string     `json:"errors,omitempty"`
}

func (a *API) checkoutState(sess *checkout.Session) CheckoutStateDTO {
	snap := a.store.Snapshot()
	step := sess.Wizard.Current()
	return CheckoutStateDTO{
		SessionID: sess.ID,
		Step:      int(step),
		StepName:  step.String(),
		Shipping:  sess.Wizard.Shipping(),
		Coupon:    sess.Coupon(),
		Totals:    pricing.Quote(snap.Items, sess.Coupon()).Rounded(),
		Errors:    sess.Wizard.Errors(),
	}
}

func (a *API) respondCheckout(w http.ResponseWriter, status int, sess *checkout.Session) {
	w.Header().Set(SessionHeader, sess.ID)
	respondJSON(w, status, a.checkoutState(sess))
}

func (a *API) GetCheckout(w http.ResponseWriter, r *http.Request) {
	a.respondCheckout(w, http.StatusOK, a.session(r))
}

func (a *API) SetShipping(w http.ResponseWriter, r *http.Request) {
	var info domain.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess := a.session(r)
	sess.Wizard.SetShipping(info)
	a.respondCheckout(w, http.StatusOK, sess)
}

func (a *API) NextStep(w http.ResponseWriter, r *http.Request) {
	sess := a.session(r)

	if _, errs := sess.Wizard.Next(); len(errs) > 0 {
		a.respondCheckout(w, http.StatusUnprocessableEntity, sess)
		return
	}
	a.respondCheckout(w, http.StatusOK, sess)
}

func (a *API) PrevStep(w http.ResponseWriter, r *http.Request) {
	sess := a.session(r)
	sess.Wizard.Back()
	a.respondCheckout(w, http.StatusOK, sess)
}

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type CouponResponseDTO struct {
	Applicable bool                  `json:"applicable"`
	Message    string                `json:"message"`
	Coupon     *domain.AppliedCoupon `json:"coupon,omitempty"`
	Totals     pricing.Totals        `json:"totals"`
}

func (a *API) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess := a.session(r)
	res := a.validator.Validate(r.Context(), req.Code)
	if res.Applicable {
		sess.ApplyCoupon(res.Coupon)
		if err := a.coupons.Set(r.Context(), sess.ID, res.Coupon); err != nil {
			log.Printf("persist applied coupon failed: %v", err)
		}
	} else {
		// a rejected code always clears whatever was applied before
		sess.ClearCoupon()
		if err := a.coupons.Delete(r.Context(), sess.ID); err != nil {
			log.Printf("clear applied coupon failed: %v", err)
		}
	}

	snap := a.store.Snapshot()
	w.Header().Set(SessionHeader, sess.ID)
	respondJSON(w, http.StatusOK, CouponResponseDTO{
		Applicable: res.Applicable,
		Message:    res.Message,
		Coupon:     res.Coupon,
		Totals:     pricing.Quote(snap.Items, sess.Coupon()).Rounded(),
	})
}

func (a *API) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	sess := a.session(r)
	sess.ClearCoupon()
	if err := a.coupons.Delete(r.Context(), sess.ID); err != nil {
		log.Printf("clear applied coupon failed: %v", err)
	}
	a.respondCheckout(w, http.StatusOK, sess)
}

type PreferenceResponseDTO struct {
	ID string `json:"id"`
}

// CreatePreference hands the cart, shipping info and coupon to the
// payment collaborator. Only reachable from the payment step; a
// provider failure surfaces as a generic message and the wizard stays
// where it is.
func (a *API) CreatePreference(w http.ResponseWriter, r *http.Request) {
	sess := a.session(r)

	if !sess.Wizard.Current().IsTerminal() {
		respondError(w, http.StatusConflict, "wrong_step", "checkout is not at the payment step")
		return
	}

	snap := a.store.Snapshot()
	if snap.IsEmpty() {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty, nothing to pay")
		return
	}

	pref := checkout.BuildPreference(snap.Items, sess.Wizard.Shipping(), sess.Coupon(), a.appURL)
	id, err := a.payments.CreatePreference(r.Context(), pref)
	if err != nil {
		log.Printf("create preference failed: %v", err)
		respondError(w, http.StatusBadGateway, "payment_error", "could not start the payment, try again")
		return
	}

	w.Header().Set(SessionHeader, sess.ID)
	respondJSON(w, http.StatusOK, PreferenceResponseDTO{ID: id})
}

type SuccessResponseDTO struct {
	PaymentID      string `json:"payment_id"`
	Status         string `json:"status"`
	CouponRedeemed bool   `json:"coupon_redeemed"`
}

// PaymentSuccess is the one-shot hook behind the post-payment success
// view: consume the session's coupon (mark it used upstream) and drop
// the checkout session.
func (a *API) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "checkout session header is required")
		return
	}

	_, redeemed := a.redeemer.Redeem(r.Context(), sessionID)
	a.sessions.Drop(sessionID)

	respondJSON(w, http.StatusOK, SuccessResponseDTO{
		PaymentID:      r.URL.Query().Get("payment_id"),
		Status:         r.URL.Query().Get("status"),
		CouponRedeemed: redeemed,
	})
}
