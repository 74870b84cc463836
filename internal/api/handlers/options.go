package handlers

import (
	"net/http"

	"property-value-service/internal/api/dto"
	"property-value-service/internal/ports"
)

// Input bounds the form surface must enforce. The estimate handler enforces
// them again on every submission.
const (
	YearMin = 2000
	YearMax = 2050

	SizeMin  = 10
	SizeMax  = 1000
	SizeStep = 10

	BedroomsMin = 1
	BedroomsMax = 6

	DistanceMin  = 0.0
	DistanceMax  = 20.0
	DistanceStep = 0.1
)

// OptionsHandler publishes selection widgets' contents: the property type and
// condition vocabularies come straight from the trained encoders.
type OptionsHandler struct {
	TypeEncoder      ports.LabelEncoder
	ConditionEncoder ports.LabelEncoder
}

func (h *OptionsHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bedrooms := make([]int, 0, BedroomsMax)
	for b := BedroomsMin; b <= BedroomsMax; b++ {
		bedrooms = append(bedrooms, b)
	}

	res := dto.OptionsResponse{
		PropertyTypes: h.TypeEncoder.Classes(),
		Conditions:    h.ConditionEncoder.Classes(),
		Bedrooms:      bedrooms,
		Year:          dto.RangeBounds{Min: YearMin, Max: YearMax},
		SizeSqm:       dto.RangeBounds{Min: SizeMin, Max: SizeMax, Step: SizeStep},
		DistanceKm:    dto.RangeBounds{Min: DistanceMin, Max: DistanceMax, Step: DistanceStep},
	}

	writeJSON(w, r, http.StatusOK, res)
}
