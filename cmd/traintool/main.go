// Command traintool is the offline training step. It fits the five label
// encoders and the linear regression model from a historical sales CSV and
// writes the six JSON artifacts the server loads at startup.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/joho/godotenv"

	"property-value-service/internal/adapters/artifacts"
	"property-value-service/internal/config"
	"property-value-service/internal/domain"
)

// Expected CSV header, one row per historical sale.
var csvHeader = []string{
	"Year", "Country", "State", "City", "Type",
	"Size_sqm", "Bedrooms", "Condition", "Distance_km", "Price_usd",
}

type sample struct {
	features domain.FeatureVector
	price    float64
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dataPath := config.Get("TRAINING_DATA", "data/training/properties.csv")
	outDir := config.Get("ARTIFACTS_DIR", "data/artifacts")

	log.Printf("Reading training data from %s ...", dataPath)
	rows, err := readRows(dataPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d rows.", len(rows))

	log.Println("Fitting label encoders...")
	encoders := map[string][]string{
		artifacts.CountryEncoderFile:   fitClasses(rows, 1),
		artifacts.RegionEncoderFile:    fitClasses(rows, 2),
		artifacts.LocalityEncoderFile:  fitClasses(rows, 3),
		artifacts.TypeEncoderFile:      fitClasses(rows, 4),
		artifacts.ConditionEncoderFile: fitClasses(rows, 7),
	}

	samples, err := buildSamples(rows, encoders)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Fitting linear model...")
	intercept, weights := fitLinear(samples)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("create artifacts dir: %v", err)
	}

	features := map[string]string{
		artifacts.CountryEncoderFile:   "country",
		artifacts.RegionEncoderFile:    "region",
		artifacts.LocalityEncoderFile:  "locality",
		artifacts.TypeEncoderFile:      "property_type",
		artifacts.ConditionEncoderFile: "condition",
	}
	for file, classes := range encoders {
		if err := writeJSON(filepath.Join(outDir, file), map[string]any{
			"feature": features[file],
			"classes": classes,
		}); err != nil {
			log.Fatal(err)
		}
	}

	if err := writeJSON(filepath.Join(outDir, artifacts.ModelFile), map[string]any{
		"intercept": intercept,
		"weights":   weights,
	}); err != nil {
		log.Fatal(err)
	}

	log.Printf("Artifacts written to %s.", outDir)
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read training data: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read training data: parse %q: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("read training data: %q has no data rows", path)
	}

	header := records[0]
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("read training data: got %d columns, want %d", len(header), len(csvHeader))
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("read training data: column %d is %q, want %q", i, header[i], want)
		}
	}

	return records[1:], nil
}

// fitClasses collects the sorted unique labels of one CSV column.
func fitClasses(rows [][]string, col int) []string {
	seen := map[string]struct{}{}
	for _, row := range rows {
		seen[row[col]] = struct{}{}
	}

	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

func buildSamples(rows [][]string, encoders map[string][]string) ([]sample, error) {
	codes := func(file string) map[string]int {
		m := map[string]int{}
		for i, c := range encoders[file] {
			m[c] = i
		}
		return m
	}
	country := codes(artifacts.CountryEncoderFile)
	region := codes(artifacts.RegionEncoderFile)
	locality := codes(artifacts.LocalityEncoderFile)
	ptype := codes(artifacts.TypeEncoderFile)
	condition := codes(artifacts.ConditionEncoderFile)

	samples := make([]sample, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("build samples: row %d: bad Year %q", i+1, row[0])
		}
		size, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("build samples: row %d: bad Size_sqm %q", i+1, row[5])
		}
		bedrooms, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			return nil, fmt.Errorf("build samples: row %d: bad Bedrooms %q", i+1, row[6])
		}
		distance, err := strconv.ParseFloat(row[8], 64)
		if err != nil {
			return nil, fmt.Errorf("build samples: row %d: bad Distance_km %q", i+1, row[8])
		}
		price, err := strconv.ParseFloat(row[9], 64)
		if err != nil {
			return nil, fmt.Errorf("build samples: row %d: bad Price_usd %q", i+1, row[9])
		}

		var v domain.FeatureVector
		v[domain.FeatYear] = year
		v[domain.FeatCountryCode] = float64(country[row[1]])
		v[domain.FeatRegionCode] = float64(region[row[2]])
		v[domain.FeatLocalityCode] = float64(locality[row[3]])
		v[domain.FeatTypeCode] = float64(ptype[row[4]])
		v[domain.FeatSizeSqm] = size
		v[domain.FeatBedrooms] = bedrooms
		v[domain.FeatConditionCode] = float64(condition[row[7]])
		v[domain.FeatDistanceKm] = distance

		samples = append(samples, sample{features: v, price: price})
	}

	return samples, nil
}

// fitLinear fits ordinary least squares by gradient descent on standardized
// features, then folds the scaling back into raw-space weights so the server
// can apply a plain dot product.
func fitLinear(samples []sample) (float64, []float64) {
	n := float64(len(samples))

	var muX, sigmaX [domain.FeatureCount]float64
	var muY, sigmaY float64

	for _, s := range samples {
		for i := range muX {
			muX[i] += s.features[i]
		}
		muY += s.price
	}
	for i := range muX {
		muX[i] /= n
	}
	muY /= n

	for _, s := range samples {
		for i := range sigmaX {
			d := s.features[i] - muX[i]
			sigmaX[i] += d * d
		}
		d := s.price - muY
		sigmaY += d * d
	}
	for i := range sigmaX {
		sigmaX[i] = math.Sqrt(sigmaX[i] / n)
		if sigmaX[i] == 0 {
			sigmaX[i] = 1 // constant column; its effect lands in the intercept
		}
	}
	sigmaY = math.Sqrt(sigmaY / n)
	if sigmaY == 0 {
		sigmaY = 1
	}

	var w [domain.FeatureCount]float64
	var b float64

	const (
		iterations = 5000
		rate       = 0.05
	)
	for it := 0; it < iterations; it++ {
		var gradW [domain.FeatureCount]float64
		var gradB float64

		for _, s := range samples {
			pred := b
			var xs [domain.FeatureCount]float64
			for i := range xs {
				xs[i] = (s.features[i] - muX[i]) / sigmaX[i]
				pred += w[i] * xs[i]
			}
			residual := pred - (s.price-muY)/sigmaY

			gradB += residual
			for i := range gradW {
				gradW[i] += residual * xs[i]
			}
		}

		b -= rate * gradB / n
		for i := range w {
			w[i] -= rate * gradW[i] / n
		}
	}

	weights := make([]float64, domain.FeatureCount)
	intercept := muY + sigmaY*b
	for i := range w {
		weights[i] = sigmaY * w[i] / sigmaX[i]
		intercept -= weights[i] * muX[i]
	}

	return intercept, weights
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("write artifact %q: marshal: %w", path, err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write artifact %q: %w", path, err)
	}
	return nil
}
