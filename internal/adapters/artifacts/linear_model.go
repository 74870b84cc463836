package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"property-value-service/internal/domain"
)

// LinearModel is the local frozen regressor: an intercept plus one weight
// per feature slot, applied as a dot product. Deterministic by construction.
type LinearModel struct {
	intercept float64
	weights   [domain.FeatureCount]float64
}

type modelArtifact struct {
	Intercept float64   `json:"intercept"`
	Weights   []float64 `json:"weights"`
}

// LoadLinearModel reads the model artifact from path.
func LoadLinearModel(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load linear model: read %q: %w", path, err)
	}

	var art modelArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("load linear model: parse %q: %w", path, err)
	}
	if len(art.Weights) != domain.FeatureCount {
		return nil, fmt.Errorf(
			"load linear model: %q has %d weights, want %d",
			path, len(art.Weights), domain.FeatureCount,
		)
	}

	m := &LinearModel{intercept: art.Intercept}
	copy(m.weights[:], art.Weights)
	return m, nil
}

// Predict returns the USD estimate for the feature vector.
func (m *LinearModel) Predict(_ context.Context, features domain.FeatureVector) (float64, error) {
	out := m.intercept
	for i, w := range m.weights {
		out += w * features[i]
	}
	return out, nil
}
