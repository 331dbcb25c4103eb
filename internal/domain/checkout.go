package domain

type CheckoutStep int

const (
	StepSummary CheckoutStep = iota + 1
	StepShipping
	StepPayment
)

// String representation (for logging)
func (s CheckoutStep) String() string {
	switch s {
	case StepSummary:
		return "SUMMARY"
	case StepShipping:
		return "SHIPPING"
	case StepPayment:
		return "PAYMENT"
	default:
		return "UNKNOWN"
	}
}

func (s CheckoutStep) IsTerminal() bool {
	return s == StepPayment
}

// ShippingInfo holds the address form. Every field is required and is
// validated before the wizard leaves the shipping step.
type ShippingInfo struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Province  string `json:"province"`
	ZipCode   string `json:"zip_code"`
}
