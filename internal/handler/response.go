package handler

import "github.com/outfitly/outfit-service/internal/domain"

type OutfitsResponse struct {
	BaseProduct *domain.Product   `json:"base_product"`
	Outfits     []domain.Outfit   `json:"outfits"`
	Metadata    domain.OutfitMeta `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
