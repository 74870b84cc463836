package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"property-value-service/internal/api/dto"
	"property-value-service/internal/domain"
	"property-value-service/internal/ports"
)

// GeographyHandler serves the closed region/locality catalog that constrains
// the form surface's two location selectors.
type GeographyHandler struct {
	Catalog         *domain.Catalog
	LocalityEncoder ports.LabelEncoder
}

func (h *GeographyHandler) Regions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListRegionsResponse{Regions: h.Catalog.Regions()})
}

// Localities lists a region's localities, each flagged with whether the
// model's trained vocabulary covers it.
func (h *GeographyHandler) Localities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	region := strings.TrimSpace(r.URL.Query().Get("region"))
	if region == "" {
		writeError(w, r, http.StatusBadRequest, "region query parameter is required")
		return
	}

	localities, err := h.Catalog.LocalitiesOf(region)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRegion) {
			writeError(w, r, http.StatusNotFound, "unknown region")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	vocabulary := h.LocalityEncoder.Classes()
	res := dto.ListLocalitiesResponse{
		Region:     region,
		Localities: make([]dto.LocalityResponse, 0, len(localities)),
	}
	for _, l := range localities {
		res.Localities = append(res.Localities, dto.LocalityResponse{
			Name:      l,
			Supported: slices.Contains(vocabulary, l),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
