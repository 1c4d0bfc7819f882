package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/marqueshop/recommender/internal/domain"
)

// NO_MATCH_EXPLANATION is the fixed text served when the catalog has
// nothing for the request.
const NO_MATCH_EXPLANATION = "We couldn't find products matching your request. Try different words or drop a constraint."

type recommendReq struct {
	Query    string `json:"query"`
	Market   string `json:"market"`
	Audience string `json:"audience,omitempty"`
}

func (api RecommenderServer) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	// The audience hint is optional; without it, only unisex items match
	// everyone safely.
	audience := domain.Audience(req.Audience)
	if req.Audience == "" {
		audience = domain.Audience_Unisex
	}

	result, err := api.RecommendUseCase.Execute(r.Context(), req.Query, domain.Market(req.Market), audience)
	if err != nil {
		api.Logger.Printf("Error recommending products: %v", err)
		respondError(w, toError(err))
		return
	}

	switch result.Stage {
	case domain.PipelineStage_Failed:
		code := errorCode_AssistantUnavailable
		if result.FailureReason == domain.FailureReason_Timeout {
			code = errorCode_Timeout
		}
		respondError(w, newErrorResp(code, "the shopping assistant is unavailable right now, please try again"))
	case domain.PipelineStage_NoMatch:
		respondJSON(w, http.StatusOK, recommendationResp{
			Items:                 []recommendationItem{},
			Explanation:           NO_MATCH_EXPLANATION,
			ExtractedRequirements: result.Requirements,
		})
	default:
		respondJSON(w, http.StatusOK, toRecommendationResp(result))
	}
}
