package dto

type EstimateRequest struct {
	Region       string  `json:"region"`
	Locality     string  `json:"locality"`
	Year         int     `json:"year"`
	PropertyType string  `json:"property_type"`
	SizeSqm      int     `json:"size_sqm"`
	Bedrooms     int     `json:"bedrooms"`
	Condition    string  `json:"condition"`
	DistanceKm   float64 `json:"distance_km"`
}

// EstimateResponse is returned for both outcomes of a pipeline run: a priced
// estimate, or an advisory when the locality is outside model coverage.
type EstimateResponse struct {
	Locality            string   `json:"locality"`
	Advisory            bool     `json:"advisory"`
	Message             string   `json:"message,omitempty"`
	SuggestedLocalities []string `json:"suggested_localities,omitempty"`
	BaseValueUSD        *float64 `json:"base_value_usd,omitempty"`
	DisplayValueINR     *float64 `json:"display_value_inr,omitempty"`
}
