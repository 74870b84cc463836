package services

import (
	"testing"

	"property-value-service/internal/domain"
)

func TestCoverageReport(t *testing.T) {
	catalog := domain.NewGeographyCatalog()
	// "Shanghai" is in the vocabulary but not the catalog.
	encoder := newStubEncoder("Bengaluru", "Mumbai", "Shanghai")

	cov := CoverageReport(catalog, encoder)

	if len(cov.Supported) != 2 || cov.Supported[0] != "Bengaluru" || cov.Supported[1] != "Mumbai" {
		t.Errorf("supported = %v, want [Bengaluru Mumbai]", cov.Supported)
	}
	if len(cov.Orphaned) != 1 || cov.Orphaned[0] != "Shanghai" {
		t.Errorf("orphaned = %v, want [Shanghai]", cov.Orphaned)
	}

	total := 0
	for _, region := range catalog.Regions() {
		localities, err := catalog.LocalitiesOf(region)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total += len(localities)
	}
	if got := len(cov.Supported) + len(cov.Unsupported); got != total {
		t.Errorf("supported+unsupported = %d, want every catalog locality (%d)", got, total)
	}

	for _, l := range cov.Unsupported {
		if l == "Bengaluru" || l == "Mumbai" {
			t.Errorf("%q reported unsupported but is in the vocabulary", l)
		}
	}
}

func TestSupportedLocalitiesSortedIntersection(t *testing.T) {
	catalog := domain.NewGeographyCatalog()
	encoder := newStubEncoder("Mumbai", "Bengaluru", "Atlantis City")

	got := SupportedLocalities(catalog, encoder)
	if len(got) != 2 || got[0] != "Bengaluru" || got[1] != "Mumbai" {
		t.Fatalf("supported localities = %v, want [Bengaluru Mumbai]", got)
	}
}
