package services

import "property-value-service/internal/domain"

// AssembleFeatures builds the model input vector in the trained column order.
//
// It is a pure function and performs no range validation; input bounds are
// enforced at the API boundary. The slot order is the one contract the model
// cannot verify at runtime, so it is pinned here in a single place.
func AssembleFeatures(
	year int,
	countryCode int,
	regionCode int,
	localityCode int,
	typeCode int,
	sizeSqm int,
	bedrooms int,
	conditionCode int,
	distanceKm float64,
) domain.FeatureVector {
	var v domain.FeatureVector
	v[domain.FeatYear] = float64(year)
	v[domain.FeatCountryCode] = float64(countryCode)
	v[domain.FeatRegionCode] = float64(regionCode)
	v[domain.FeatLocalityCode] = float64(localityCode)
	v[domain.FeatTypeCode] = float64(typeCode)
	v[domain.FeatSizeSqm] = float64(sizeSqm)
	v[domain.FeatBedrooms] = float64(bedrooms)
	v[domain.FeatConditionCode] = float64(conditionCode)
	v[domain.FeatDistanceKm] = distanceKm
	return v
}
