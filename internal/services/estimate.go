package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"property-value-service/internal/domain"
	"property-value-service/internal/ports"
)

// Upper bound on alternative localities named in an advisory.
const maxSuggestions = 5

// EstimateValue runs the prediction pipeline for one validated request.
//
// Unknown locality is an expected outcome, not an error: the model is never
// invoked and the caller receives an advisory naming alternatives the model
// was actually trained on. Every other failure (unknown region/type/condition
// label, model failure) is returned as an error for the caller's boundary to
// report; none of them should occur when the form surface is constrained to
// the vocabularies this service publishes.
func EstimateValue(
	ctx context.Context,
	req domain.EstimateRequest,
	encoders ports.EncoderSet,
	model ports.Predictor,
	catalog *domain.Catalog,
) (*domain.Estimate, error) {
	// Guard against the encoder vocabulary, not the geography catalog.
	// The catalog is a curated whitelist; the vocabulary is whatever the
	// training data covered. The two lists diverge (see CoverageReport).
	if !slices.Contains(encoders.Locality.Classes(), req.Locality) {
		return &domain.Estimate{
			Locality:  req.Locality,
			Advisory:  true,
			Suggested: suggestLocalities(catalog, encoders.Locality),
			CreatedAt: time.Now().UTC(),
		}, nil
	}

	countryCode, err := encoders.Country.Encode(domain.Country)
	if err != nil {
		return nil, fmt.Errorf("estimate value: encode country: %w", err)
	}

	regionCode, err := encoders.Region.Encode(req.Region)
	if err != nil {
		return nil, fmt.Errorf("estimate value: encode region %q: %w", req.Region, err)
	}

	localityCode, err := encoders.Locality.Encode(req.Locality)
	if err != nil {
		return nil, fmt.Errorf("estimate value: encode locality %q: %w", req.Locality, err)
	}

	typeCode, err := encoders.Type.Encode(req.PropertyType)
	if err != nil {
		return nil, fmt.Errorf("estimate value: encode property type %q: %w", req.PropertyType, err)
	}

	conditionCode, err := encoders.Condition.Encode(req.Condition)
	if err != nil {
		return nil, fmt.Errorf("estimate value: encode condition %q: %w", req.Condition, err)
	}

	features := AssembleFeatures(
		req.Year,
		countryCode,
		regionCode,
		localityCode,
		typeCode,
		req.SizeSqm,
		req.Bedrooms,
		conditionCode,
		req.DistanceKm,
	)

	usd, err := model.Predict(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("estimate value: predict: %w", err)
	}

	// Rounding is presentation only; RawValue keeps the model output intact.
	return &domain.Estimate{
		Locality:     req.Locality,
		BaseValue:    math.Round(usd),
		DisplayValue: math.Round(usd * domain.USDToINR),
		RawValue:     usd,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// suggestLocalities returns catalog localities the model can actually price,
// sorted, capped at maxSuggestions.
func suggestLocalities(catalog *domain.Catalog, localityEncoder ports.LabelEncoder) []string {
	supported := SupportedLocalities(catalog, localityEncoder)
	if len(supported) > maxSuggestions {
		supported = supported[:maxSuggestions]
	}
	return supported
}
