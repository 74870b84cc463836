package domain

import "time"

// Country is the single country the model is trained on.
const Country = "India"

// USDToINR is the static conversion rate applied to model output.
// The model prices in USD; there is no live-rate lookup.
const USDToINR = 86.5

// Feature slot positions. The model was trained on exactly this column
// order; reordering silently corrupts predictions without any error.
const (
	FeatYear = iota
	FeatCountryCode
	FeatRegionCode
	FeatLocalityCode
	FeatTypeCode
	FeatSizeSqm
	FeatBedrooms
	FeatConditionCode
	FeatDistanceKm

	FeatureCount = 9
)

// FeatureVector is the fixed-order numeric input to the prediction model.
type FeatureVector [FeatureCount]float64

// EstimateRequest carries one validated form submission.
// The API layer owns range validation; the pipeline trusts these values.
type EstimateRequest struct {
	Region       string
	Locality     string
	Year         int
	PropertyType string
	SizeSqm      int
	Bedrooms     int
	Condition    string
	DistanceKm   float64
}

// Estimate is a terminal pipeline outcome.
//
// When Advisory is true the locality is outside the model's training
// coverage: no inference ran, Suggested lists known-good alternatives, and
// the monetary fields are zero. Otherwise BaseValue (USD) and DisplayValue
// (INR) hold the prediction rounded to whole units; RawValue keeps the
// unrounded model output for the history store.
type Estimate struct {
	Locality     string
	Advisory     bool
	Suggested    []string
	BaseValue    float64
	DisplayValue float64
	RawValue     float64
	CreatedAt    time.Time
}
