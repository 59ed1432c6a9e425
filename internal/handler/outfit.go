package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/outfitly/outfit-service/internal/domain"
)

// GET /products/{productID}/outfits
func (h *Handler) GetOutfits(w http.ResponseWriter, r *http.Request) {
	// Parse and validate product id
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid product_id parameter")
		return
	}

	// Parse and validate max_outfits
	maxOutfits := 3
	if maxStr := r.URL.Query().Get("max_outfits"); maxStr != "" {
		parsed, err := strconv.Atoi(maxStr)
		if err != nil || parsed < 1 || parsed > 10 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid max_outfits parameter")
			return
		}
		maxOutfits = parsed
	}

	result, err := h.service.GetOutfits(r.Context(), productID, maxOutfits)
	if err != nil {
		// Product not found
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product_not_found",
				fmt.Sprintf("Product with ID %s does not exist", productID))
			return
		}
		// Request timeout
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := OutfitsResponse{
		BaseProduct: result.Response.BaseProduct,
		Outfits:     result.Response.Outfits,
		Metadata: domain.OutfitMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Response.Outfits),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
