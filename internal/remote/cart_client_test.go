package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MatyAlts/synapsse-storefront/internal/cartsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCartJSON() string {
	return `{"items":[
		{"id":7,"product":{"id":2,"name":"Monstera","description":"big leaves","price":12.5,"imageUrl":"/monstera.png"},"quantity":3}
	]}`
}

func TestCartClient_GetCart(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cart", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testCartJSON()))
	}))
	defer srv.Close()

	sut := NewCartClient(srv.URL, NewHTTPClient(time.Second))
	ctx := cartsync.WithToken(context.Background(), "tok123")

	view, err := sut.GetCart(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(7), view.Items[0].ID)
	assert.Equal(t, "2", view.Items[0].Product.ID)
	assert.Equal(t, "Monstera", view.Items[0].Product.Title)
	assert.Equal(t, "12.50", view.Items[0].Product.Price)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestCartClient_UpdateItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/cart/items/7", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 4, body["quantity"])

		_, _ = w.Write([]byte(testCartJSON()))
	}))
	defer srv.Close()

	sut := NewCartClient(srv.URL, NewHTTPClient(time.Second))

	view, err := sut.UpdateItem(context.Background(), 7, 4)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
}

func TestCartClient_RemoveItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/cart/items/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	sut := NewCartClient(srv.URL, NewHTTPClient(time.Second))

	view, err := sut.RemoveItem(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sut := NewCartClient(srv.URL, NewHTTPClient(time.Second))

	_, err := sut.GetCart(context.Background())
	require.ErrorContains(t, err, "500")
}

func TestCartClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	sut := NewCartClient(srv.URL, NewHTTPClient(time.Second))

	_, err := sut.GetCart(context.Background())
	require.Error(t, err)
}
