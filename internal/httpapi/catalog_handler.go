package httpapi

import (
	"errors"
	"net/http"

	"github.com/MatyAlts/synapsse-storefront/internal/catalog"
	"github.com/go-chi/chi/v5"
)

func (a *API) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.catalog.GetAllProducts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "catalog_error", "could not load products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (a *API) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := a.catalog.GetProduct(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "catalog_error", "could not load product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}
