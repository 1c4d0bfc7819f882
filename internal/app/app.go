package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/marqueshop/recommender/internal/adapters/inbound/http"
	"github.com/marqueshop/recommender/internal/adapters/inbound/workers"
	"github.com/marqueshop/recommender/internal/adapters/outbound/config"
	"github.com/marqueshop/recommender/internal/adapters/outbound/log"
	"github.com/marqueshop/recommender/internal/adapters/outbound/modelrunner"
	"github.com/marqueshop/recommender/internal/adapters/outbound/postgres"
	"github.com/marqueshop/recommender/internal/adapters/outbound/pubsub"
	"github.com/marqueshop/recommender/internal/adapters/outbound/qdrant"
	"github.com/marqueshop/recommender/internal/adapters/outbound/time"
	"github.com/marqueshop/recommender/internal/telemetry"
	"github.com/marqueshop/recommender/internal/usecases"
)

// NewRecommenderApp creates and returns a new instance of the recommender application.
func NewRecommenderApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitProductRepository{},
			&postgres.InitVectorIndex{},
			&qdrant.InitVectorIndex{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitLLMClient{},
			&modelrunner.InitSemanticEncoder{},

			&usecases.InitUnderstandQuery{},
			&usecases.InitExtractRequirements{},
			&usecases.InitSearchCandidates{},
			&usecases.InitRankCandidates{},
			&usecases.InitExplainSelection{},
			&usecases.InitRecommend{},
			&usecases.InitSyncProduct{},
			&usecases.InitResyncCatalog{},
			&usecases.InitIngestProduct{},
			&usecases.InitDeactivateProduct{},
			&usecases.InitRelayOutbox{},
			&usecases.InitCheckHealth{},
		).
		Host(
			&http.RecommenderServer{},
			&workers.ProductEventSubscriber{},
			&workers.OutboxRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
