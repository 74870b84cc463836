package ports

import "errors"

// ErrUnknownLabel is returned by Encode for labels outside the trained
// vocabulary. Callers that can recover (the locality guard) must check
// membership via Classes before encoding.
var ErrUnknownLabel = errors.New("unknown label")

// Port: a label<->integer bijection fixed at training time.
// Implementations are loaded once from a frozen artifact and never mutated.
type LabelEncoder interface {
	// Classes returns the known labels in encoding order.
	Classes() []string

	// Encode maps a label to its integer code, or ErrUnknownLabel.
	Encode(label string) (int, error)
}

// EncoderSet groups the five categorical encoders the model was trained with.
type EncoderSet struct {
	Country   LabelEncoder
	Region    LabelEncoder
	Locality  LabelEncoder
	Type      LabelEncoder
	Condition LabelEncoder
}
