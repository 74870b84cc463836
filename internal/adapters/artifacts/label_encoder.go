// Package artifacts loads the frozen model and encoder files produced by the
// offline trainer (cmd/traintool). Artifacts are read once at startup and
// held immutable for the process lifetime.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"

	"property-value-service/internal/ports"
)

// LabelEncoder is a file-backed label<->code bijection. The code of a label
// is its index in the classes list, matching how the trainer fit it.
type LabelEncoder struct {
	feature string
	classes []string
	codes   map[string]int
}

type encoderArtifact struct {
	Feature string   `json:"feature"`
	Classes []string `json:"classes"`
}

// LoadLabelEncoder reads one encoder artifact from path.
func LoadLabelEncoder(path string) (*LabelEncoder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load label encoder: read %q: %w", path, err)
	}

	var art encoderArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("load label encoder: parse %q: %w", path, err)
	}
	if len(art.Classes) == 0 {
		return nil, fmt.Errorf("load label encoder: %q has no classes", path)
	}

	codes := make(map[string]int, len(art.Classes))
	for i, c := range art.Classes {
		if _, dup := codes[c]; dup {
			return nil, fmt.Errorf("load label encoder: %q has duplicate class %q", path, c)
		}
		codes[c] = i
	}

	return &LabelEncoder{feature: art.Feature, classes: art.Classes, codes: codes}, nil
}

// Feature names the categorical field this encoder was fit for.
func (e *LabelEncoder) Feature() string { return e.feature }

// Classes returns the known labels in encoding order.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Encode maps a label to its trained integer code.
func (e *LabelEncoder) Encode(label string) (int, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, fmt.Errorf("encode %s %q: %w", e.feature, label, ports.ErrUnknownLabel)
	}
	return code, nil
}
