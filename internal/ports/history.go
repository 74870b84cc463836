package ports

import (
	"context"

	"property-value-service/internal/domain"
)

// Port: persists served estimates so future model retraining can use them.
// Recording is best-effort; failures must never fail the originating request.
type EstimateRecorder interface {
	RecordEstimate(ctx context.Context, req domain.EstimateRequest, est domain.Estimate, requestID string) error
}
