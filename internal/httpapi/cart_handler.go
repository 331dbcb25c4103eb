package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MatyAlts/synapsse-storefront/internal/cart"
	"github.com/MatyAlts/synapsse-storefront/internal/cartsync"
	"github.com/MatyAlts/synapsse-storefront/internal/catalog"
	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/MatyAlts/synapsse-storefront/internal/pricing"
	"github.com/go-chi/chi/v5"
)

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type AmountRequestDTO struct {
	Amount int `json:"amount"`
}

type CartResponseDTO struct {
	Cart   domain.Cart       `json:"cart"`
	Totals pricing.Totals    `json:"totals"`
	Sync   *cartsync.Outcome `json:"sync,omitempty"`
}

func (a *API) cartResponse(snap domain.Cart, out *cartsync.Outcome) CartResponseDTO {
	return CartResponseDTO{
		Cart:   snap,
		Totals: pricing.Quote(snap.Items, nil).Rounded(),
		Sync:   out,
	}
}

func (a *API) GetCart(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)

	snap := a.store.Snapshot()
	if token != "" && a.sync.Journal().Drifted() {
		// a previous mutation fell back locally; close the window
		if refreshed, err := a.sync.Refresh(r.Context(), token); err == nil {
			snap = refreshed
		}
	}

	respondJSON(w, http.StatusOK, a.cartResponse(snap, nil))
}

func (a *API) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, err := a.catalog.GetProduct(r.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "catalog_error", "could not load product")
		return
	}

	unlock := a.locks.lock(product.ID)
	defer unlock()

	snap, out, err := a.sync.Add(r.Context(), bearerToken(r), product, req.Quantity)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, a.cartResponse(snap, &out))
}

func (a *API) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	a.adjustQuantity(w, r, a.sync.Increase)
}

func (a *API) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	a.adjustQuantity(w, r, a.sync.Decrease)
}

func (a *API) adjustQuantity(
	w http.ResponseWriter,
	r *http.Request,
	mutate func(ctx context.Context, token, productID string, amount int) (domain.Cart, cartsync.Outcome, error),
) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	amount := 1
	if r.Body != nil && r.ContentLength > 0 {
		var req AmountRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
		if req.Amount != 0 {
			amount = req.Amount
		}
	}
	if amount <= 0 || amount > 99 {
		respondError(w, http.StatusBadRequest, "invalid_amount", "amount must be between 1 and 99")
		return
	}

	unlock := a.locks.lock(productID)
	defer unlock()

	snap, out, err := mutate(r.Context(), bearerToken(r), productID, amount)
	if errors.Is(err, cart.ErrItemNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "item not in cart")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_amount", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, a.cartResponse(snap, &out))
}

func (a *API) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	unlock := a.locks.lock(productID)
	defer unlock()

	snap, out, _ := a.sync.Remove(r.Context(), bearerToken(r), productID)
	respondJSON(w, http.StatusOK, a.cartResponse(snap, &out))
}

type SyncLogResponseDTO struct {
	Drifted bool               `json:"drifted"`
	Entries []cartsync.Outcome `json:"entries"`
}

// SyncLog exposes which mutations ever reached the server.
func (a *API) SyncLog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SyncLogResponseDTO{
		Drifted: a.sync.Journal().Drifted(),
		Entries: a.sync.Journal().Recent(50),
	})
}
