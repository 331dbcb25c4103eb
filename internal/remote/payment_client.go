package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

// PaymentClient calls the payment-preference collaborator. The
// preference id it returns is opaque; the provider owns the rest of
// the payment protocol.
type PaymentClient struct {
	baseURL string
	hc      *http.Client
}

func NewPaymentClient(baseURL string, hc *http.Client) *PaymentClient {
	return &PaymentClient{baseURL: baseURL, hc: hc}
}

func (c *PaymentClient) CreatePreference(ctx context.Context, pref domain.PreferenceRequest) (string, error) {
	body, err := json.Marshal(pref)
	if err != nil {
		return "", fmt.Errorf("marshal preference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/create-preference", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build preference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment service request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("payment service returned %d", res.StatusCode)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode preference response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("payment service returned empty preference id")
	}
	return out.ID, nil
}
