package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
	"github.com/mkline/storefront/internal/service/product"
)

func (r *Router) handleAddProduct(w http.ResponseWriter, req *http.Request) {
	name := req.URL.Query().Get("name")
	price := req.URL.Query().Get("price")

	record, err := r.products.Add(req.Context(), name, price)
	switch {
	case errors.Is(err, product.ErrMissingDetails), errors.Is(err, product.ErrInvalidPrice):
		writeFailure(w, "Please provide both name and price")
		return
	case err != nil:
		r.logger.Error("add product failed", "error", err, "name", name)
		writeFailure(w, "Error adding product")
		return
	}
	if data, ok := sessionFromContext(req.Context()); ok {
		r.logger.Info("product added", "our_id", record.OurID, "actor", data.Email)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Product added successfully",
		"product": record,
	})
}

// handleListProducts answers with every record under the legacy response key.
// A read failure is logged but still answered with an empty list; existing
// clients cannot tell it apart from an empty catalog.
func (r *Router) handleListProducts(w http.ResponseWriter, req *http.Request) {
	products, err := r.products.List(req.Context())
	if err != nil {
		r.logger.Error("list products failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"Products": []domain.Product{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"All the Products": products})
}

// handleListProductsPost mirrors the GET listing under the response key the
// POST variant has always used. The body is not acted on beyond logging.
func (r *Router) handleListProductsPost(w http.ResponseWriter, req *http.Request) {
	var payload struct {
		TestData any `json:"testData"`
	}
	if err := json.NewDecoder(req.Body).Decode(&payload); err == nil && payload.TestData != nil {
		r.logger.Info("list request payload", "test_data", payload.TestData)
	}

	products, err := r.products.List(req.Context())
	if err != nil {
		r.logger.Error("list products failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"Products": []domain.Product{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"POST Mongoose Products": products})
}

func (r *Router) handleGetProduct(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	record, err := r.products.Get(req.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeFailure(w, "Product not found")
		return
	case err != nil:
		r.logger.Error("get product failed", "error", err, "our_id", id)
		writeFailure(w, "Error finding product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": record})
}

func (r *Router) handleUpdateProduct(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	name := req.URL.Query().Get("name")
	price := req.URL.Query().Get("price")

	record, err := r.products.Update(req.Context(), id, name, price)
	switch {
	case errors.Is(err, product.ErrNoUpdateFields):
		writeFailure(w, "Please provide name or price to update")
		return
	case errors.Is(err, repository.ErrNotFound):
		writeFailure(w, "Product not found")
		return
	case err != nil:
		r.logger.Error("update product failed", "error", err, "our_id", id)
		writeFailure(w, "Error updating product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Product updated successfully",
		"product": record,
	})
}

func (r *Router) handleDeleteProduct(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	record, err := r.products.Delete(req.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeFailure(w, "Product not found")
		return
	case err != nil:
		r.logger.Error("delete product failed", "error", err, "our_id", id)
		writeFailure(w, "Error deleting product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Product deleted successfully",
		"product": record,
	})
}
