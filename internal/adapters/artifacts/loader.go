package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"property-value-service/internal/ports"
)

// Artifact file names, fixed across trainer and server.
const (
	ModelFile            = "model.json"
	CountryEncoderFile   = "country_encoder.json"
	RegionEncoderFile    = "region_encoder.json"
	LocalityEncoderFile  = "locality_encoder.json"
	TypeEncoderFile      = "type_encoder.json"
	ConditionEncoderFile = "condition_encoder.json"
)

var requiredFiles = []string{
	ModelFile,
	CountryEncoderFile,
	RegionEncoderFile,
	LocalityEncoderFile,
	TypeEncoderFile,
	ConditionEncoderFile,
}

// Load reads all six artifacts from dir. A missing file is a startup-fatal
// condition: the error names the missing artifact and the remediation so
// the operator knows to run the offline training step first.
func Load(dir string) (ports.EncoderSet, *LinearModel, error) {
	for _, name := range requiredFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return ports.EncoderSet{}, nil, fmt.Errorf(
				"load artifacts: missing artifact %q in %q (run `go run ./cmd/traintool` first): %w",
				name, dir, err,
			)
		}
	}

	model, err := LoadLinearModel(filepath.Join(dir, ModelFile))
	if err != nil {
		return ports.EncoderSet{}, nil, fmt.Errorf("load artifacts: %w", err)
	}

	encoders := ports.EncoderSet{}
	for _, e := range []struct {
		file string
		dst  *ports.LabelEncoder
	}{
		{CountryEncoderFile, &encoders.Country},
		{RegionEncoderFile, &encoders.Region},
		{LocalityEncoderFile, &encoders.Locality},
		{TypeEncoderFile, &encoders.Type},
		{ConditionEncoderFile, &encoders.Condition},
	} {
		enc, err := LoadLabelEncoder(filepath.Join(dir, e.file))
		if err != nil {
			return ports.EncoderSet{}, nil, fmt.Errorf("load artifacts: %w", err)
		}
		*e.dst = enc
	}

	return encoders, model, nil
}
