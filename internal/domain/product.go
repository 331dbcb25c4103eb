package domain

// Product is an immutable catalog entry. Price stays the decimal string
// the catalog serves; it is parsed only when totals are computed.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}
