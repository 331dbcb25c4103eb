package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponClient_Validate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/coupons/validate/SAVE20", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"SAVE20","message":"coupon is valid","valid":true,"discountPercentage":20}`))
	}))
	defer srv.Close()

	sut := NewCouponClient(srv.URL, NewHTTPClient(time.Second))

	val, err := sut.Validate(context.Background(), "SAVE20")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", val.Code)
	assert.True(t, val.Valid)
	assert.Equal(t, 20.0, val.DiscountPercentage)
}

func TestCouponClient_ValidateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	sut := NewCouponClient(srv.URL, NewHTTPClient(time.Second))

	_, err := sut.Validate(context.Background(), "SAVE20")
	require.ErrorContains(t, err, "502")
}

func TestCouponClient_MarkUsed(t *testing.T) {
	var calledPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calledPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sut := NewCouponClient(srv.URL, NewHTTPClient(time.Second))

	require.NoError(t, sut.MarkUsed(context.Background(), "SAVE20"))
	assert.Equal(t, "/api/coupons/use/SAVE20", calledPath)
}

func TestPaymentClient_CreatePreference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/create-preference", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pref-123"}`))
	}))
	defer srv.Close()

	sut := NewPaymentClient(srv.URL, NewHTTPClient(time.Second))

	id, err := sut.CreatePreference(context.Background(), domain.PreferenceRequest{
		Items: []domain.PreferenceItem{{Title: "Monstera", Quantity: 1, UnitPrice: 10, Currency: "ARS"}},
		Payer: domain.Payer{Name: "Ana", Surname: "Gomez", Email: "ana@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pref-123", id)
}

func TestPaymentClient_EmptyPreferenceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sut := NewPaymentClient(srv.URL, NewHTTPClient(time.Second))

	_, err := sut.CreatePreference(context.Background(), domain.PreferenceRequest{})
	require.ErrorContains(t, err, "empty preference id")
}
