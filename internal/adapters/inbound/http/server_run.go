package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/marqueshop/recommender/internal/telemetry"
	"github.com/marqueshop/recommender/internal/usecases"
	"github.com/rs/cors"
)

// RecommenderServer is the REST API HTTP server for the recommendation service.
type RecommenderServer struct {
	Port                     int                        `config:"HTTP_PORT" default:"8080"`
	Logger                   *log.Logger                `resolve:""`
	RecommendUseCase         usecases.Recommend         `resolve:""`
	IngestProductUseCase     usecases.IngestProduct     `resolve:""`
	DeactivateProductUseCase usecases.DeactivateProduct `resolve:""`
	ResyncCatalogUseCase     usecases.ResyncCatalog     `resolve:""`
	CheckHealthUseCase       usecases.CheckHealth       `resolve:""`
}

func (api RecommenderServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/ai/recommend", api.Recommend)
	mux.HandleFunc("GET /api/ai/health", api.GetHealth)
	mux.HandleFunc("POST /api/ai/resync", api.ResyncCatalog)
	mux.HandleFunc("PUT /api/catalog/products/{id}", api.SaveProduct)
	mux.HandleFunc("DELETE /api/catalog/products/{id}", api.DeactivateProduct)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	return mux
}

// Run starts the HTTP server for the RecommenderServer.
func (api RecommenderServer) Run(ctx context.Context) error {

	h := telemetry.HttpHandler(api.routes(), "recommender-api")

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("RecommenderServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("RecommenderServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("RecommenderServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the RecommenderServer is ready by probing the health endpoint.
func (api RecommenderServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/api/ai/health", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
