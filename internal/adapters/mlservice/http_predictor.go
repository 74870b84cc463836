// Package mlservice implements the Predictor port against a remote model
// service, for deployments where the regressor is hosted out of process.
package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"property-value-service/internal/domain"
)

type HTTPPredictor struct {
	endpoint string
	client   *http.Client
}

func NewHTTPPredictor(endpoint string) *HTTPPredictor {
	return &HTTPPredictor{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	ValueUSD float64 `json:"value_usd"`
}

// Predict posts the feature vector to the model service's /predict endpoint.
func (p *HTTPPredictor) Predict(ctx context.Context, features domain.FeatureVector) (float64, error) {
	body, err := json.Marshal(predictRequest{Features: features[:]})
	if err != nil {
		return 0, fmt.Errorf("http predictor: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("http predictor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http predictor: model service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("http predictor: model service returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("http predictor: decode response: %w", err)
	}

	return out.ValueUSD, nil
}
