package services

import (
	"slices"
	"sort"

	"property-value-service/internal/domain"
	"property-value-service/internal/ports"
)

// Coverage reconciles the curated geography catalog against the locality
// encoder's trained vocabulary. The two lists are maintained independently
// (hand-curated whitelist vs. historical training data) and drift between
// them is otherwise invisible until a user hits an advisory.
type Coverage struct {
	// Catalog localities the model was trained on, sorted.
	Supported []string
	// Catalog localities the model cannot price, sorted.
	Unsupported []string
	// Vocabulary entries absent from the catalog, sorted. Non-empty means
	// the training data references places the form surface can never offer.
	Orphaned []string
}

// SupportedLocalities returns the sorted intersection of the catalog and the
// locality encoder vocabulary.
func SupportedLocalities(catalog *domain.Catalog, localityEncoder ports.LabelEncoder) []string {
	classes := localityEncoder.Classes()

	supported := make([]string, 0, len(classes))
	for _, region := range catalog.Regions() {
		localities, err := catalog.LocalitiesOf(region)
		if err != nil {
			continue
		}
		for _, l := range localities {
			if slices.Contains(classes, l) {
				supported = append(supported, l)
			}
		}
	}
	sort.Strings(supported)
	return supported
}

// CoverageReport computes the full catalog/vocabulary reconciliation.
// The server logs it at startup so drift surfaces on every boot.
func CoverageReport(catalog *domain.Catalog, localityEncoder ports.LabelEncoder) Coverage {
	classes := localityEncoder.Classes()

	inCatalog := map[string]struct{}{}
	var supported, unsupported []string
	for _, region := range catalog.Regions() {
		localities, err := catalog.LocalitiesOf(region)
		if err != nil {
			continue
		}
		for _, l := range localities {
			inCatalog[l] = struct{}{}
			if slices.Contains(classes, l) {
				supported = append(supported, l)
			} else {
				unsupported = append(unsupported, l)
			}
		}
	}

	var orphaned []string
	for _, c := range classes {
		if _, ok := inCatalog[c]; !ok {
			orphaned = append(orphaned, c)
		}
	}

	sort.Strings(supported)
	sort.Strings(unsupported)
	sort.Strings(orphaned)

	return Coverage{
		Supported:   supported,
		Unsupported: unsupported,
		Orphaned:    orphaned,
	}
}
