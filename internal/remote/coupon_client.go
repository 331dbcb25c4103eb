package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

// CouponClient talks to the coupon service. Implements coupon.Service.
type CouponClient struct {
	baseURL string
	hc      *http.Client
}

func NewCouponClient(baseURL string, hc *http.Client) *CouponClient {
	return &CouponClient{baseURL: baseURL, hc: hc}
}

func (c *CouponClient) Validate(ctx context.Context, code string) (*domain.CouponValidation, error) {
	u := c.baseURL + "/api/coupons/validate/" + url.PathEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build validate request: %w", err)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coupon service request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("coupon service returned %d", res.StatusCode)
	}

	var val domain.CouponValidation
	if err := json.NewDecoder(res.Body).Decode(&val); err != nil {
		return nil, fmt.Errorf("decode validation response: %w", err)
	}
	return &val, nil
}

func (c *CouponClient) MarkUsed(ctx context.Context, code string) error {
	u := c.baseURL + "/api/coupons/use/" + url.PathEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return fmt.Errorf("build mark-used request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("coupon service request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("coupon service returned %d", res.StatusCode)
	}
	return nil
}
