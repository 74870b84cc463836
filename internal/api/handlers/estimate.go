package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"slices"
	"strings"

	"property-value-service/internal/api/dto"
	"property-value-service/internal/domain"
	"property-value-service/internal/platform/obs"
	"property-value-service/internal/ports"
	"property-value-service/internal/services"
)

// EstimateHandler runs the prediction pipeline for one form submission.
// It owns the form-surface input constraints: the pipeline itself trusts
// whatever reaches it.
type EstimateHandler struct {
	Catalog  *domain.Catalog
	Encoders ports.EncoderSet
	Model    ports.Predictor

	// Optional collaborators; nil disables them.
	Cache    ports.EstimateCache
	Recorder ports.EstimateRecorder
}

func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if msg := h.validate(&req); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	svcReq := domain.EstimateRequest{
		Region:       req.Region,
		Locality:     req.Locality,
		Year:         req.Year,
		PropertyType: req.PropertyType,
		SizeSqm:      req.SizeSqm,
		Bedrooms:     req.Bedrooms,
		Condition:    req.Condition,
		DistanceKm:   req.DistanceKm,
	}

	ctx := r.Context()

	var est *domain.Estimate
	if h.Cache != nil {
		cached, err := h.Cache.Get(ctx, svcReq)
		if err != nil {
			log.Printf("estimate cache get failed: %v", err)
		}
		est = cached
	}

	if est == nil {
		var err error
		est, err = services.EstimateValue(ctx, svcReq, h.Encoders, h.Model, h.Catalog)
		if err != nil {
			// Per-request failures never kill the process; the response carries
			// the underlying cause so a misconfigured artifact is diagnosable.
			log.Printf("estimate failed: req_id=%s err=%v", obs.RequestID(ctx), err)
			writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("prediction error: %v", err))
			return
		}

		if h.Cache != nil {
			if err := h.Cache.Put(ctx, svcReq, *est); err != nil {
				log.Printf("estimate cache put failed: %v", err)
			}
		}
	}

	// History measures demand, not model load: cache hits are recorded too.
	if h.Recorder != nil {
		if err := h.Recorder.RecordEstimate(ctx, svcReq, *est, obs.RequestID(ctx)); err != nil {
			log.Printf("estimate history record failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, toEstimateResponse(*est))
}

// validate enforces every form-surface constraint and returns the first
// violation's message, or "" when the request is acceptable.
func (h *EstimateHandler) validate(req *dto.EstimateRequest) string {
	req.Region = strings.TrimSpace(req.Region)
	req.Locality = strings.TrimSpace(req.Locality)

	if req.Region == "" {
		return "region is required"
	}
	if req.Locality == "" {
		return "locality is required"
	}
	if !h.Catalog.Contains(req.Region, req.Locality) {
		if _, err := h.Catalog.LocalitiesOf(req.Region); err != nil {
			return fmt.Sprintf("unknown region %q", req.Region)
		}
		return fmt.Sprintf("locality %q is not in region %q", req.Locality, req.Region)
	}

	if req.Year < YearMin || req.Year > YearMax {
		return fmt.Sprintf("year must be between %d and %d", YearMin, YearMax)
	}

	if !slices.Contains(h.Encoders.Type.Classes(), req.PropertyType) {
		return fmt.Sprintf("unknown property_type %q", req.PropertyType)
	}

	if req.SizeSqm < SizeMin || req.SizeSqm > SizeMax {
		return fmt.Sprintf("size_sqm must be between %d and %d", SizeMin, SizeMax)
	}
	if req.SizeSqm%SizeStep != 0 {
		return fmt.Sprintf("size_sqm must be a multiple of %d", SizeStep)
	}

	if req.Bedrooms < BedroomsMin || req.Bedrooms > BedroomsMax {
		return fmt.Sprintf("bedrooms must be between %d and %d", BedroomsMin, BedroomsMax)
	}

	if !slices.Contains(h.Encoders.Condition.Classes(), req.Condition) {
		return fmt.Sprintf("unknown condition %q", req.Condition)
	}

	if req.DistanceKm < DistanceMin || req.DistanceKm > DistanceMax {
		return fmt.Sprintf("distance_km must be between %.1f and %.1f", DistanceMin, DistanceMax)
	}
	// One-decimal step; tolerate float noise from JSON decoding.
	if steps := req.DistanceKm / DistanceStep; math.Abs(steps-math.Round(steps)) > 1e-6 {
		return fmt.Sprintf("distance_km must be a multiple of %.1f", DistanceStep)
	}

	return ""
}

func toEstimateResponse(est domain.Estimate) dto.EstimateResponse {
	if est.Advisory {
		return dto.EstimateResponse{
			Locality:            est.Locality,
			Advisory:            true,
			Message:             fmt.Sprintf("no historical housing data for %s yet", est.Locality),
			SuggestedLocalities: est.Suggested,
		}
	}

	base := est.BaseValue
	display := est.DisplayValue
	return dto.EstimateResponse{
		Locality:        est.Locality,
		BaseValueUSD:    &base,
		DisplayValueINR: &display,
	}
}
