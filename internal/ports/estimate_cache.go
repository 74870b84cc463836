package ports

import (
	"context"

	"property-value-service/internal/domain"
)

// Port: a boundary for caching priced estimates by request tuple.
// A miss is (nil, nil); cache errors degrade to a model call.
type EstimateCache interface {
	Get(ctx context.Context, req domain.EstimateRequest) (*domain.Estimate, error)
	Put(ctx context.Context, req domain.EstimateRequest, est domain.Estimate) error
}
