package checkout

import (
	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/MatyAlts/synapsse-storefront/internal/pricing"
)

const currency = "ARS"

// BuildPreference maps the cart, shipping info and active coupon into
// the payment provider's request. The discount is applied per item as
// a reduced unit price, rounded to 2dp only here, at transmission. The
// provider recomputes totals server-side; client totals are never sent.
func BuildPreference(items []domain.CartItem, shipping domain.ShippingInfo, coupon *domain.AppliedCoupon, appURL string) domain.PreferenceRequest {
	prefItems := make([]domain.PreferenceItem, 0, len(items))
	for _, it := range items {
		unit := pricing.UnitPrice(it.Product)
		if coupon != nil && coupon.Discount > 0 {
			unit = unit * (1 - coupon.Discount/100)
		}
		prefItems = append(prefItems, domain.PreferenceItem{
			Title:     it.Product.Title,
			Quantity:  it.Quantity,
			UnitPrice: pricing.Round2(unit),
			Currency:  currency,
		})
	}

	return domain.PreferenceRequest{
		Items: prefItems,
		Payer: domain.Payer{
			Name:    shipping.FirstName,
			Surname: shipping.LastName,
			Email:   shipping.Email,
		},
		BackURLs: domain.BackURLs{
			Success: appURL + "/checkout/success",
			Failure: appURL + "/checkout/failure",
			Pending: appURL + "/checkout/pending",
		},
	}
}
