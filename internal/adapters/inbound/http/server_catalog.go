package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
)

type productReq struct {
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Slug         string   `json:"slug"`
	Market       string   `json:"market"`
	Audience     string   `json:"audience"`
	Price        float64  `json:"price"`
	Rating       float64  `json:"rating"`
	InStock      bool     `json:"in_stock"`
	Active       bool     `json:"active"`
	OccasionTags []string `json:"occasion_tags"`
	StyleTags    []string `json:"style_tags"`
	SeasonTags   []string `json:"season_tags"`
	ColorTags    []string `json:"color_tags"`
	MaterialTags []string `json:"material_tags"`
	ActivityTags []string `json:"activity_tags"`
}

func (api RecommenderServer) SaveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid product id: %v", err)))
		return
	}

	var req productReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	err = api.IngestProductUseCase.Execute(r.Context(), domain.Product{
		ID:           id,
		Name:         req.Name,
		Brand:        req.Brand,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Slug:         req.Slug,
		Market:       domain.Market(req.Market),
		Audience:     domain.Audience(req.Audience),
		Price:        req.Price,
		Rating:       req.Rating,
		InStock:      req.InStock,
		Active:       req.Active,
		OccasionTags: req.OccasionTags,
		StyleTags:    req.StyleTags,
		SeasonTags:   req.SeasonTags,
		ColorTags:    req.ColorTags,
		MaterialTags: req.MaterialTags,
		ActivityTags: req.ActivityTags,
	})
	if err != nil {
		api.Logger.Printf("Error saving product %s: %v", id, err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api RecommenderServer) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid product id: %v", err)))
		return
	}

	if err := api.DeactivateProductUseCase.Execute(r.Context(), id); err != nil {
		api.Logger.Printf("Error deactivating product %s: %v", id, err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
