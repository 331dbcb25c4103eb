package checkout

import (
	"regexp"
	"strings"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s./0-9]*$`)
)

// Wizard is the checkout stepper: Summary -> Shipping -> Payment.
// Forward moves pass a per-step validation gate, backward moves are
// always allowed, and the step never leaves [Summary, Payment].
type Wizard struct {
	current  domain.CheckoutStep
	shipping domain.ShippingInfo
	errors   map[string]string
}

func NewWizard() *Wizard {
	return &Wizard{
		current: domain.StepSummary,
		errors:  map[string]string{},
	}
}

func (w *Wizard) Current() domain.CheckoutStep {
	return w.current
}

func (w *Wizard) Shipping() domain.ShippingInfo {
	return w.shipping
}

// SetShipping stores the form as typed. Validation happens at the
// gate, not here, so partial input never errors mid-form.
func (w *Wizard) SetShipping(info domain.ShippingInfo) {
	w.shipping = info
	w.errors = map[string]string{}
}

// Errors returns the field-keyed messages from the last failed gate.
func (w *Wizard) Errors() map[string]string {
	return w.errors
}

// Next tries to advance one step. Leaving Shipping requires a fully
// valid address; a failed gate leaves the step untouched and returns
// one message per invalid field.
func (w *Wizard) Next() (domain.CheckoutStep, map[string]string) {
	if w.current == domain.StepShipping {
		if errs := ValidateShipping(w.shipping); len(errs) > 0 {
			w.errors = errs
			return w.current, errs
		}
	}
	if w.current < domain.StepPayment {
		w.current++
	}
	w.errors = map[string]string{}
	return w.current, nil
}

// Back steps backward unconditionally, floored at Summary.
func (w *Wizard) Back() domain.CheckoutStep {
	if w.current > domain.StepSummary {
		w.current--
	}
	return w.current
}

// ValidateShipping checks every required field and returns one message
// per invalid field, keyed by the form field name.
func ValidateShipping(s domain.ShippingInfo) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(s.FirstName) == "" {
		errs["first_name"] = "enter your first name"
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs["last_name"] = "enter your last name"
	}
	if !emailRe.MatchString(strings.TrimSpace(s.Email)) {
		errs["email"] = "enter a valid email"
	}
	phone := strings.TrimSpace(s.Phone)
	if !phoneRe.MatchString(phone) || len(phone) < 7 {
		errs["phone"] = "enter a valid phone number"
	}
	if strings.TrimSpace(s.Address) == "" {
		errs["address"] = "address is required"
	}
	if strings.TrimSpace(s.City) == "" {
		errs["city"] = "enter your city"
	}
	if strings.TrimSpace(s.Province) == "" {
		errs["province"] = "enter your province"
	}
	if strings.TrimSpace(s.ZipCode) == "" {
		errs["zip_code"] = "enter your zip code"
	}

	return errs
}
