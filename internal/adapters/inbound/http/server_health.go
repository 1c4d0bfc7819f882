package http

import "net/http"

func (api RecommenderServer) GetHealth(w http.ResponseWriter, r *http.Request) {
	// Always 200: a degraded dependency is reported in the payload, the
	// probe itself succeeded.
	respondJSON(w, http.StatusOK, api.CheckHealthUseCase.Execute(r.Context()))
}
