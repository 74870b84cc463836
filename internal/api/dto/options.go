package dto

type ListRegionsResponse struct {
	Regions []string `json:"regions"`
}

// LocalityResponse marks whether the model can actually price the locality,
// so the form surface can warn before submission instead of after.
type LocalityResponse struct {
	Name      string `json:"name"`
	Supported bool   `json:"supported"`
}

type ListLocalitiesResponse struct {
	Region     string             `json:"region"`
	Localities []LocalityResponse `json:"localities"`
}

type RangeBounds struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step,omitempty"`
}

// OptionsResponse publishes every input constraint the form surface must
// enforce before posting an estimate request.
type OptionsResponse struct {
	PropertyTypes []string    `json:"property_types"`
	Conditions    []string    `json:"conditions"`
	Bedrooms      []int       `json:"bedrooms"`
	Year          RangeBounds `json:"year"`
	SizeSqm       RangeBounds `json:"size_sqm"`
	DistanceKm    RangeBounds `json:"distance_km"`
}
