package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"property-value-service/internal/api/dto"
	"property-value-service/internal/domain"
	"property-value-service/internal/ports"
)

type stubEncoder struct {
	classes []string
}

func (e *stubEncoder) Classes() []string { return e.classes }

func (e *stubEncoder) Encode(label string) (int, error) {
	for i, c := range e.classes {
		if c == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("encode %q: %w", label, ports.ErrUnknownLabel)
}

type stubPredictor struct {
	calls  int
	output float64
	err    error
}

func (p *stubPredictor) Predict(context.Context, domain.FeatureVector) (float64, error) {
	p.calls++
	return p.output, p.err
}

type stubCache struct {
	hit  *domain.Estimate
	puts int
}

func (c *stubCache) Get(context.Context, domain.EstimateRequest) (*domain.Estimate, error) {
	return c.hit, nil
}

func (c *stubCache) Put(context.Context, domain.EstimateRequest, domain.Estimate) error {
	c.puts++
	return nil
}

type stubRecorder struct {
	records int
}

func (r *stubRecorder) RecordEstimate(context.Context, domain.EstimateRequest, domain.Estimate, string) error {
	r.records++
	return nil
}

func newTestHandler(model *stubPredictor) *EstimateHandler {
	return &EstimateHandler{
		Catalog: domain.NewGeographyCatalog(),
		Encoders: ports.EncoderSet{
			Country:   &stubEncoder{classes: []string{"India"}},
			Region:    &stubEncoder{classes: []string{"Karnataka", "Maharashtra", "Sikkim"}},
			Locality:  &stubEncoder{classes: []string{"Bengaluru", "Mumbai"}},
			Type:      &stubEncoder{classes: []string{"Apartment", "Villa"}},
			Condition: &stubEncoder{classes: []string{"Fair", "Good"}},
		},
		Model: model,
	}
}

func validBody() map[string]any {
	return map[string]any{
		"region":        "Maharashtra",
		"locality":      "Mumbai",
		"year":          2024,
		"property_type": "Apartment",
		"size_sqm":      100,
		"bedrooms":      3,
		"condition":     "Good",
		"distance_km":   2.0,
	}
}

func postEstimate(t *testing.T, h *EstimateHandler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/estimates", strings.NewReader(string(raw)))
	rec := httptest.NewRecorder()
	h.Estimate(rec, req)
	return rec
}

func TestEstimateHandlerSuccess(t *testing.T) {
	model := &stubPredictor{output: 200000}
	rec := postEstimate(t, newTestHandler(model), validBody())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Advisory {
		t.Fatal("expected priced estimate, got advisory")
	}
	if res.BaseValueUSD == nil || *res.BaseValueUSD != 200000 {
		t.Errorf("base value = %v, want 200000", res.BaseValueUSD)
	}
	if res.DisplayValueINR == nil || *res.DisplayValueINR != 17300000 {
		t.Errorf("display value = %v, want 17300000", res.DisplayValueINR)
	}
	if model.calls != 1 {
		t.Errorf("model invoked %d times, want 1", model.calls)
	}
}

func TestEstimateHandlerAdvisory(t *testing.T) {
	model := &stubPredictor{output: 200000}
	body := validBody()
	body["region"] = "Sikkim"
	body["locality"] = "Gangtok"

	rec := postEstimate(t, newTestHandler(model), body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !res.Advisory {
		t.Fatal("expected advisory")
	}
	if !strings.Contains(res.Message, "Gangtok") {
		t.Errorf("advisory message %q does not name the locality", res.Message)
	}
	if len(res.SuggestedLocalities) == 0 {
		t.Error("advisory carries no suggested localities")
	}
	if model.calls != 0 {
		t.Errorf("model invoked %d times on advisory path, want 0", model.calls)
	}
}

func TestEstimateHandlerValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{"unknown region", func(b map[string]any) { b["region"] = "Atlantis" }, "unknown region"},
		{"locality outside region", func(b map[string]any) { b["locality"] = "Bengaluru" }, "not in region"},
		{"year too early", func(b map[string]any) { b["year"] = 1999 }, "year"},
		{"year too late", func(b map[string]any) { b["year"] = 2051 }, "year"},
		{"unknown property type", func(b map[string]any) { b["property_type"] = "Castle" }, "property_type"},
		{"size below minimum", func(b map[string]any) { b["size_sqm"] = 5 }, "size_sqm"},
		{"size off step", func(b map[string]any) { b["size_sqm"] = 105 }, "multiple of 10"},
		{"bedrooms out of range", func(b map[string]any) { b["bedrooms"] = 7 }, "bedrooms"},
		{"unknown condition", func(b map[string]any) { b["condition"] = "Ruined" }, "condition"},
		{"distance out of range", func(b map[string]any) { b["distance_km"] = 25.0 }, "distance_km"},
		{"distance off step", func(b map[string]any) { b["distance_km"] = 2.05 }, "multiple of 0.1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := &stubPredictor{output: 200000}
			body := validBody()
			tc.mutate(body)

			rec := postEstimate(t, newTestHandler(model), body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.wantMsg) {
				t.Errorf("body %q does not mention %q", rec.Body.String(), tc.wantMsg)
			}
			if model.calls != 0 {
				t.Errorf("model invoked %d times on invalid input, want 0", model.calls)
			}
		})
	}
}

func TestEstimateHandlerModelFailure(t *testing.T) {
	model := &stubPredictor{err: errors.New("artifact corrupt")}
	rec := postEstimate(t, newTestHandler(model), validBody())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "prediction error") {
		t.Errorf("body %q is not a prediction error", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "artifact corrupt") {
		t.Errorf("body %q does not carry the underlying cause", rec.Body.String())
	}
}

func TestEstimateHandlerRecordsCacheHits(t *testing.T) {
	model := &stubPredictor{output: 200000}
	recorder := &stubRecorder{}
	cache := &stubCache{hit: &domain.Estimate{
		Locality:     "Mumbai",
		BaseValue:    200000,
		DisplayValue: 17300000,
	}}

	h := newTestHandler(model)
	h.Cache = cache
	h.Recorder = recorder

	rec := postEstimate(t, h, validBody())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if model.calls != 0 {
		t.Errorf("model invoked %d times on cache hit, want 0", model.calls)
	}
	if cache.puts != 0 {
		t.Errorf("cache written %d times on cache hit, want 0", cache.puts)
	}
	if recorder.records != 1 {
		t.Errorf("history recorded %d times on cache hit, want 1", recorder.records)
	}
}

func TestEstimateHandlerRecordsOnMiss(t *testing.T) {
	model := &stubPredictor{output: 200000}
	recorder := &stubRecorder{}
	cache := &stubCache{}

	h := newTestHandler(model)
	h.Cache = cache
	h.Recorder = recorder

	rec := postEstimate(t, h, validBody())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if model.calls != 1 {
		t.Errorf("model invoked %d times on cache miss, want 1", model.calls)
	}
	if cache.puts != 1 {
		t.Errorf("cache written %d times, want 1", cache.puts)
	}
	if recorder.records != 1 {
		t.Errorf("history recorded %d times, want 1", recorder.records)
	}
}

func TestEstimateHandlerRejectsUnknownFields(t *testing.T) {
	body := validBody()
	body["color"] = "blue"

	rec := postEstimate(t, newTestHandler(&stubPredictor{}), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestEstimateHandlerMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/estimates", nil)
	rec := httptest.NewRecorder()
	newTestHandler(&stubPredictor{}).Estimate(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
