package profiledb

// One archived run of the profile builder
type LoadProfileRun struct {
	ID                int64   `db:"id"`
	CreatedAt         int64   `db:"created_at"`
	SourcePath        string  `db:"source_path"`
	OutputPath        string  `db:"output_path"`
	ReadingCount      int     `db:"reading_count"`
	HourlySampleCount int     `db:"hourly_sample_count"`
	FallbackSlotCount int     `db:"fallback_slot_count"`
	FallbackMeanWh    float64 `db:"fallback_mean_wh"`
}
