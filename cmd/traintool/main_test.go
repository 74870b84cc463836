package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"property-value-service/internal/domain"
)

// linearSamples builds a deterministic sample set satisfying an exact linear
// relation, so the fit must recover it.
func linearSamples(n int, intercept float64, weights domain.FeatureVector) []sample {
	seed := int64(1)
	next := func() float64 {
		seed = (seed*1103515245 + 12345) % 2147483648
		return float64(seed) / 2147483648
	}

	samples := make([]sample, 0, n)
	for i := 0; i < n; i++ {
		var v domain.FeatureVector
		v[domain.FeatYear] = 2000 + math.Floor(next()*50)
		v[domain.FeatCountryCode] = 0
		v[domain.FeatRegionCode] = math.Floor(next() * 5)
		v[domain.FeatLocalityCode] = math.Floor(next() * 5)
		v[domain.FeatTypeCode] = math.Floor(next() * 3)
		v[domain.FeatSizeSqm] = 10 + math.Floor(next()*99)*10
		v[domain.FeatBedrooms] = 1 + math.Floor(next()*6)
		v[domain.FeatConditionCode] = math.Floor(next() * 3)
		v[domain.FeatDistanceKm] = math.Floor(next()*200) / 10

		price := intercept
		for j := range weights {
			price += weights[j] * v[j]
		}
		samples = append(samples, sample{features: v, price: price})
	}
	return samples
}

func TestFitLinearRecoversKnownRelation(t *testing.T) {
	truthIntercept := 1000.0
	truthWeights := domain.FeatureVector{50, 0, -200, 300, 1500, 900, 4000, 2500, -750}

	samples := linearSamples(40, truthIntercept, truthWeights)
	intercept, weights := fitLinear(samples)

	// The fit is exercised through predictions, the contract the server
	// relies on, rather than through individual coefficients.
	for _, s := range samples {
		got := intercept
		for i := range weights {
			got += weights[i] * s.features[i]
		}
		if math.Abs(got-s.price) > 1.0 {
			t.Fatalf("prediction = %v, want %v (within 1.0) for %v", got, s.price, s.features)
		}
	}

	// A point outside the training set must extrapolate the same relation.
	held := domain.FeatureVector{2045, 0, 4, 2, 1, 640, 5, 2, 18.3}
	want := truthIntercept
	got := intercept
	for i := range weights {
		want += truthWeights[i] * held[i]
		got += weights[i] * held[i]
	}
	if math.Abs(got-want) > 1.0 {
		t.Fatalf("held-out prediction = %v, want %v (within 1.0)", got, want)
	}
}

func TestFitLinearConstantColumn(t *testing.T) {
	// Country is constant in every real dataset; its weight must not blow up.
	samples := linearSamples(40, 500, domain.FeatureVector{10, 0, 0, 0, 0, 25, 0, 0, 0})

	intercept, weights := fitLinear(samples)

	for _, s := range samples {
		got := intercept
		for i := range weights {
			got += weights[i] * s.features[i]
		}
		if math.Abs(got-s.price) > 1.0 {
			t.Fatalf("prediction = %v, want %v (within 1.0)", got, s.price)
		}
	}
	if math.IsNaN(weights[domain.FeatCountryCode]) || math.IsInf(weights[domain.FeatCountryCode], 0) {
		t.Fatalf("constant column weight = %v", weights[domain.FeatCountryCode])
	}
}

func TestReadRowsValidCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "properties.csv")
	body := strings.Join([]string{
		strings.Join(csvHeader, ","),
		"2024,India,Maharashtra,Mumbai,Apartment,100,3,Good,2.0,200000",
		"2023,India,Karnataka,Bengaluru,Villa,250,5,Excellent,14.0,310000",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	rows, err := readRows(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][3] != "Mumbai" {
		t.Errorf("row 0 city = %q, want Mumbai", rows[0][3])
	}
}

func TestReadRowsRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "properties.csv")
	body := strings.Join([]string{
		"Year,Country,State,Town,Type,Size_sqm,Bedrooms,Condition,Distance_km,Price_usd",
		"2024,India,Maharashtra,Mumbai,Apartment,100,3,Good,2.0,200000",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	_, err := readRows(path)
	if err == nil {
		t.Fatal("expected error for wrong header")
	}
	if !strings.Contains(err.Error(), `"Town"`) {
		t.Errorf("error %q does not name the bad column", err)
	}
}

func TestFitClassesSortedUnique(t *testing.T) {
	rows := [][]string{
		{"2024", "India", "Maharashtra", "Mumbai"},
		{"2023", "India", "Karnataka", "Bengaluru"},
		{"2022", "India", "Karnataka", "Mumbai"},
	}

	classes := fitClasses(rows, 2)
	if len(classes) != 2 || classes[0] != "Karnataka" || classes[1] != "Maharashtra" {
		t.Fatalf("classes = %v, want [Karnataka Maharashtra]", classes)
	}
}
