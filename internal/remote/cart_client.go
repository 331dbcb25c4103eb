package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MatyAlts/synapsse-storefront/internal/cartsync"
	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

// CartClient talks to the remote cart service. Implements
// cartsync.RemoteCart. Every call carries the bearer session token
// taken from the context.
type CartClient struct {
	baseURL string
	hc      *http.Client
}

func NewCartClient(baseURL string, hc *http.Client) *CartClient {
	return &CartClient{baseURL: baseURL, hc: hc}
}

type productDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

type cartItemDTO struct {
	ID       int64      `json:"id"`
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

type cartDTO struct {
	Items []cartItemDTO `json:"items"`
}

func (c *CartClient) GetCart(ctx context.Context) (*cartsync.RemoteCartView, error) {
	return c.doCart(ctx, http.MethodGet, c.baseURL+"/api/cart", nil)
}

func (c *CartClient) UpdateItem(ctx context.Context, itemID int64, quantity int) (*cartsync.RemoteCartView, error) {
	body, err := json.Marshal(map[string]int{"quantity": quantity})
	if err != nil {
		return nil, fmt.Errorf("marshal update request: %w", err)
	}
	url := fmt.Sprintf("%s/api/cart/items/%d", c.baseURL, itemID)
	return c.doCart(ctx, http.MethodPut, url, body)
}

func (c *CartClient) RemoveItem(ctx context.Context, itemID int64) (*cartsync.RemoteCartView, error) {
	url := fmt.Sprintf("%s/api/cart/items/%d", c.baseURL, itemID)
	return c.doCart(ctx, http.MethodDelete, url, nil)
}

func (c *CartClient) doCart(ctx context.Context, method, url string, body []byte) (*cartsync.RemoteCartView, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := cartsync.TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cart service request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("cart service returned %d", res.StatusCode)
	}

	var dto cartDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("decode cart response: %w", err)
	}

	return toView(dto), nil
}

func toView(dto cartDTO) *cartsync.RemoteCartView {
	view := &cartsync.RemoteCartView{
		Items: make([]cartsync.RemoteItem, 0, len(dto.Items)),
	}
	for _, it := range dto.Items {
		view.Items = append(view.Items, cartsync.RemoteItem{
			ID: it.ID,
			Product: domain.Product{
				ID:          strconv.FormatInt(it.Product.ID, 10),
				Title:       it.Product.Name,
				Description: it.Product.Description,
				Price:       strconv.FormatFloat(it.Product.Price, 'f', 2, 64),
				ImageURL:    it.Product.ImageURL,
			},
			Quantity: it.Quantity,
		})
	}
	return view
}
