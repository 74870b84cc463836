package api

import (
	"net/http"

	"property-value-service/internal/api/handlers"
	"property-value-service/internal/domain"
	"property-value-service/internal/ports"
)

// RouterDeps carries everything the handlers need. Cache and Recorder are
// optional; nil disables caching and history recording respectively.
type RouterDeps struct {
	Catalog  *domain.Catalog
	Encoders ports.EncoderSet
	Model    ports.Predictor
	Cache    ports.EstimateCache
	Recorder ports.EstimateRecorder
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	geoHandler := &handlers.GeographyHandler{
		Catalog:         deps.Catalog,
		LocalityEncoder: deps.Encoders.Locality,
	}
	optionsHandler := &handlers.OptionsHandler{
		TypeEncoder:      deps.Encoders.Type,
		ConditionEncoder: deps.Encoders.Condition,
	}
	estimateHandler := &handlers.EstimateHandler{
		Catalog:  deps.Catalog,
		Encoders: deps.Encoders,
		Model:    deps.Model,
		Cache:    deps.Cache,
		Recorder: deps.Recorder,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/regions", geoHandler.Regions)
	mux.HandleFunc("/localities", geoHandler.Localities)
	mux.HandleFunc("/options", optionsHandler.Options)
	mux.HandleFunc("/estimates", estimateHandler.Estimate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
