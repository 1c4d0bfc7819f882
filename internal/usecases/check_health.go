package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// LLMHealth reports reachability of the model runner.
type LLMHealth struct {
	Reachable bool     `json:"reachable"`
	Models    []string `json:"models"`
}

// VectorIndexHealth reports reachability of the vector index and the
// record count per namespace.
type VectorIndexHealth struct {
	Reachable bool           `json:"reachable"`
	Counts    map[string]int `json:"counts"`
}

// CatalogHealth reports basic catalog statistics.
type CatalogHealth struct {
	Reachable      bool `json:"reachable"`
	ActiveProducts int  `json:"active_products"`
}

// HealthReport is the aggregate health snapshot of the service's dependencies.
type HealthReport struct {
	Status      string            `json:"status"`
	LLM         LLMHealth         `json:"llm"`
	VectorIndex VectorIndexHealth `json:"vector_index"`
	Catalog     CatalogHealth     `json:"catalog"`
}

// CheckHealth probes the service's dependencies. It never errors: an
// unreachable dependency is a finding, not a failure.
type CheckHealth interface {
	Execute(ctx context.Context) HealthReport
}

// CheckHealthImpl is the implementation of CheckHealth.
type CheckHealthImpl struct {
	llmClient domain.LLMClient
	index     domain.VectorIndex
	catalog   domain.CatalogRepository
	logger    *log.Logger
}

// NewCheckHealthImpl creates a new instance of CheckHealthImpl.
func NewCheckHealthImpl(
	llmClient domain.LLMClient,
	index domain.VectorIndex,
	catalog domain.CatalogRepository,
	logger *log.Logger,
) CheckHealthImpl {
	return CheckHealthImpl{
		llmClient: llmClient,
		index:     index,
		catalog:   catalog,
		logger:    logger,
	}
}

// Execute probes the LLM, the vector index, and the catalog.
func (ch CheckHealthImpl) Execute(ctx context.Context) HealthReport {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	report := HealthReport{
		Status: "ok",
		VectorIndex: VectorIndexHealth{
			Reachable: true,
			Counts:    map[string]int{},
		},
	}

	models, err := ch.llmClient.AvailableModels(spanCtx)
	if err != nil {
		ch.logger.Printf("CheckHealth:llm unreachable: %v", err)
	} else {
		report.LLM.Reachable = true
		for _, m := range models {
			report.LLM.Models = append(report.LLM.Models, m.Name)
		}
	}

	for _, market := range []domain.Market{domain.Market_KG, domain.Market_US, domain.Market_ALL} {
		namespace := domain.NamespaceForMarket(market)
		count, err := ch.index.Count(spanCtx, namespace)
		if err != nil {
			ch.logger.Printf("CheckHealth:vector index unreachable for %s: %v", namespace, err)
			report.VectorIndex.Reachable = false
			break
		}
		report.VectorIndex.Counts[namespace] = count
	}
	if !report.VectorIndex.Reachable {
		report.VectorIndex.Counts = map[string]int{}
	}

	active, err := ch.catalog.CountActiveProducts(spanCtx)
	if err != nil {
		ch.logger.Printf("CheckHealth:catalog unreachable: %v", err)
	} else {
		report.Catalog.Reachable = true
		report.Catalog.ActiveProducts = active
	}

	if !report.LLM.Reachable || !report.VectorIndex.Reachable || !report.Catalog.Reachable {
		report.Status = "degraded"
	}

	span.SetAttributes(attribute.String("status", report.Status))
	return report
}

// InitCheckHealth initializes the CheckHealth use case.
type InitCheckHealth struct {
	LLMClient domain.LLMClient         `resolve:""`
	Index     domain.VectorIndex       `resolve:""`
	Catalog   domain.CatalogRepository `resolve:""`
	Logger    *log.Logger              `resolve:""`
}

// Initialize registers CheckHealth in the dependency container.
func (i InitCheckHealth) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CheckHealth](NewCheckHealthImpl(i.LLMClient, i.Index, i.Catalog, i.Logger))
	return ctx, nil
}
