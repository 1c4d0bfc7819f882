package http

import (
	"net/http"

	"github.com/marqueshop/recommender/internal/domain"
)

func (api RecommenderServer) ResyncCatalog(w http.ResponseWriter, r *http.Request) {
	market := domain.Market(r.URL.Query().Get("market"))

	report, err := api.ResyncCatalogUseCase.Execute(r.Context(), market)
	if err != nil {
		api.Logger.Printf("Error resyncing catalog: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, report)
}
