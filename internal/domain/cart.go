package domain

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an immutable snapshot of the cart contents, ordered by
// insertion. Mutations go through the cart store, which hands out a
// fresh snapshot after every change.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c Cart) Find(productID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
