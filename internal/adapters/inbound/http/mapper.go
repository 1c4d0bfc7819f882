package http

import (
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
)

func toError(err error) errorResp {
	switch e := err.(type) {
	case *domain.ValidationErr:
		return newErrorResp(errorCode_BadRequest, e.Error())
	case *domain.NotFoundErr:
		return newErrorResp(errorCode_NotFound, e.Error())
	default:
		return newErrorResp(errorCode_Internal, "internal server error")
	}
}

type recommendationItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Brand    string    `json:"brand"`
	Price    float64   `json:"price"`
	Rating   float64   `json:"rating"`
	ImageURL string    `json:"image_url,omitempty"`
	Slug     string    `json:"slug,omitempty"`
	Score    float64   `json:"score"`
	Source   string    `json:"source"`
}

type recommendationResp struct {
	Items                 []recommendationItem     `json:"items"`
	Explanation           string                   `json:"explanation"`
	Confidence            float64                  `json:"confidence"`
	ExtractedRequirements domain.RequirementFilter `json:"extracted_requirements"`
}

func toRecommendationResp(result domain.RecommendationResult) recommendationResp {
	resp := recommendationResp{
		Items:                 []recommendationItem{},
		Explanation:           result.Explanation,
		Confidence:            result.Confidence,
		ExtractedRequirements: result.Requirements,
	}
	for _, c := range result.Items {
		resp.Items = append(resp.Items, recommendationItem{
			ID:       c.Product.ID,
			Name:     c.Product.Name,
			Brand:    c.Product.Brand,
			Price:    c.Product.Price,
			Rating:   c.Product.Rating,
			ImageURL: c.Product.ImageURL,
			Slug:     c.Product.Slug,
			Score:    c.Score,
			Source:   string(c.Source),
		})
	}
	return resp
}
