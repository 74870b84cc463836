// Package history persists served estimates to Postgres so the next offline
// training run can fold real traffic back into the dataset.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"property-value-service/internal/domain"
	"property-value-service/internal/platform/obs"
)

// SQLEstimateRecorder is a Postgres-backed implementation of the
// EstimateRecorder port.
type SQLEstimateRecorder struct {
	DB *sql.DB
}

func NewSQLEstimateRecorder(db *sql.DB) *SQLEstimateRecorder {
	return &SQLEstimateRecorder{DB: db}
}

// RecordEstimate inserts one served estimate. Advisory outcomes are stored
// too: they measure how often users ask for uncovered localities.
func (s *SQLEstimateRecorder) RecordEstimate(
	ctx context.Context,
	req domain.EstimateRequest,
	est domain.Estimate,
	requestID string,
) (err error) {
	defer obs.Time(ctx, "history.RecordEstimate")(&err)

	if s.DB == nil {
		return errors.New("estimate recorder: db is nil")
	}

	const q = `
	INSERT INTO estimate_history (
		request_id, region, locality, year, property_type,
		size_sqm, bedrooms, condition, distance_km,
		advisory, raw_value_usd, base_value_usd, display_value_inr, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	_, err = s.DB.ExecContext(ctx, q,
		requestID, req.Region, req.Locality, req.Year, req.PropertyType,
		req.SizeSqm, req.Bedrooms, req.Condition, req.DistanceKm,
		est.Advisory, est.RawValue, est.BaseValue, est.DisplayValue, est.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record estimate: insert estimate_history: %w", err)
	}

	return nil
}
