package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

// ProfileClient reads the authenticated user's saved address, used to
// prefill the shipping form. Implements checkout.ProfileSource.
type ProfileClient struct {
	baseURL string
	hc      *http.Client
}

func NewProfileClient(baseURL string, hc *http.Client) *ProfileClient {
	return &ProfileClient{baseURL: baseURL, hc: hc}
}

type profileDTO struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Province  string `json:"province"`
	ZipCode   string `json:"zipCode"`
}

func (c *ProfileClient) Profile(ctx context.Context, token string) (domain.ShippingInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/profile", nil)
	if err != nil {
		return domain.ShippingInfo{}, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.hc.Do(req)
	if err != nil {
		return domain.ShippingInfo{}, fmt.Errorf("profile request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return domain.ShippingInfo{}, fmt.Errorf("profile endpoint returned %d", res.StatusCode)
	}

	var dto profileDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return domain.ShippingInfo{}, fmt.Errorf("decode profile response: %w", err)
	}

	return domain.ShippingInfo{
		Email:     dto.Email,
		Phone:     dto.Phone,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Address:   dto.Address,
		City:      dto.City,
		Province:  dto.Province,
		ZipCode:   dto.ZipCode,
	}, nil
}
