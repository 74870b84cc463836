package history

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the estimate_history table if it does not exist.
// Run by the server at startup when history recording is enabled.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: db is nil")
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS estimate_history (
		id                BIGSERIAL PRIMARY KEY,
		request_id        TEXT NOT NULL,
		region            TEXT NOT NULL,
		locality          TEXT NOT NULL,
		year              INT NOT NULL,
		property_type     TEXT NOT NULL,
		size_sqm          INT NOT NULL,
		bedrooms          INT NOT NULL,
		condition         TEXT NOT NULL,
		distance_km       DOUBLE PRECISION NOT NULL,
		advisory          BOOLEAN NOT NULL,
		raw_value_usd     DOUBLE PRECISION NOT NULL,
		base_value_usd    DOUBLE PRECISION NOT NULL,
		display_value_inr DOUBLE PRECISION NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_estimate_history_locality
		ON estimate_history (locality, created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: create estimate_history: %w", err)
	}

	return nil
}
