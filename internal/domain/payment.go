package domain

// Types for the payment-preference collaborator. The provider recomputes
// the discount server-side; this client only supplies discounted unit
// prices rounded at transmission time.

type PreferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency_id"`
}

type Payer struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PreferenceRequest struct {
	Items    []PreferenceItem `json:"items"`
	Payer    Payer            `json:"payer"`
	BackURLs BackURLs         `json:"back_urls"`
}
