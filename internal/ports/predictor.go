package ports

import (
	"context"

	"property-value-service/internal/domain"
)

// Port: the pre-trained regression model, opaque behind a single call.
// Output is denominated in USD. Implementations must be deterministic for
// identical input and identical loaded artifact.
type Predictor interface {
	Predict(ctx context.Context, features domain.FeatureVector) (float64, error)
}
