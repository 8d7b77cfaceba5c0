package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smart_climate"
)

type PrefsSQLite struct {
	db *sql.DB
}

func NewPrefsSQLite(db *sql.DB) *PrefsSQLite {
	return &PrefsSQLite{db: db}
}

const (
	userPrefsRowID = 1

	insertOrUpdatePrefsSQL = `
		INSERT INTO user_prefs (id, temp_min_c, temp_max_c, ac_threshold_c, aqi_threshold, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			temp_min_c=excluded.temp_min_c,
			temp_max_c=excluded.temp_max_c,
			ac_threshold_c=excluded.ac_threshold_c,
			aqi_threshold=excluded.aqi_threshold,
			updated_at=excluded.updated_at
	`

	selectPrefsSQL = `
		SELECT temp_min_c, temp_max_c, ac_threshold_c, aqi_threshold
		FROM user_prefs WHERE id=?
	`
)

// Save updates or inserts the user_prefs row (id always 1).
func (r *PrefsSQLite) Save(ctx context.Context, p smart_climate.UserPreferences) error {
	_, err := r.db.ExecContext(ctx, insertOrUpdatePrefsSQL,
		userPrefsRowID,
		p.TempMinC,
		p.TempMaxC,
		p.ACThresholdC,
		p.AQIThreshold,
		time.Now().UTC(),
	)
	return err
}

// Load fetches the stored preferences. The bool reports whether a row existed;
// when false the caller should fall back to its defaults.
func (r *PrefsSQLite) Load(ctx context.Context) (smart_climate.UserPreferences, bool, error) {
	row := r.db.QueryRowContext(ctx, selectPrefsSQL, userPrefsRowID)

	var p smart_climate.UserPreferences
	if err := row.Scan(&p.TempMinC, &p.TempMaxC, &p.ACThresholdC, &p.AQIThreshold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return smart_climate.UserPreferences{}, false, nil
		}
		return smart_climate.UserPreferences{}, false, err
	}
	return p, true, nil
}
