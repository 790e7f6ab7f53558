package profiledb

import (
	"database/sql"
	"fmt"

	"github.com/NotCoffee418/esm_load_profile/pkg/types"
)

// InsertLoadProfile stores the run and all of its entries in one transaction.
func InsertLoadProfile(db *sql.DB, run *LoadProfileRun, entries []types.ProfileEntry) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO load_profiles "+
			"(created_at, source_path, output_path, reading_count, hourly_sample_count, fallback_slot_count, fallback_mean_wh) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.CreatedAt,
		run.SourcePath,
		run.OutputPath,
		run.ReadingCount,
		run.HourlySampleCount,
		run.FallbackSlotCount,
		run.FallbackMeanWh,
	)
	if err != nil {
		return 0, err
	}
	profileID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(
		"INSERT INTO load_profile_entries (profile_id, month, weekday, hour, energy) " +
			"VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(profileID, e.Month, e.Weekday, e.Hour, e.Energy); err != nil {
			return 0, fmt.Errorf("failed to insert entry %d/%d/%d: %w", e.Month, e.Weekday, e.Hour, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	run.ID = profileID
	return profileID, nil
}

// GetLatestLoadProfileRun returns the most recently archived run, or nil if there is none.
func GetLatestLoadProfileRun(db *sql.DB) (*LoadProfileRun, error) {
	var run LoadProfileRun
	err := db.QueryRow(
		"SELECT id, created_at, source_path, output_path, reading_count, " +
			"hourly_sample_count, fallback_slot_count, fallback_mean_wh " +
			"FROM load_profiles ORDER BY created_at DESC, id DESC LIMIT 1",
	).Scan(
		&run.ID,
		&run.CreatedAt,
		&run.SourcePath,
		&run.OutputPath,
		&run.ReadingCount,
		&run.HourlySampleCount,
		&run.FallbackSlotCount,
		&run.FallbackMeanWh,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// GetLoadProfileEntries returns the entries of a run in profile order.
func GetLoadProfileEntries(db *sql.DB, profileID int64) ([]types.ProfileEntry, error) {
	rows, err := db.Query(
		"SELECT month, weekday, hour, energy FROM load_profile_entries "+
			"WHERE profile_id = ? ORDER BY month, weekday, hour",
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]types.ProfileEntry, 0, types.ProfileSize)
	for rows.Next() {
		var e types.ProfileEntry
		if err := rows.Scan(&e.Month, &e.Weekday, &e.Hour, &e.Energy); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
