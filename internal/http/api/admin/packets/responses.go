package packets

// SyncMethodsResponse reports the catalog upsert counts. The split is
// driver-dependent telemetry, not a correctness signal.
type SyncMethodsResponse struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// PopulateCalendarResponse reports how many rows were stored.
type PopulateCalendarResponse struct {
	StrategyID int `json:"strategy_id"`
	CityID     int `json:"city_id"`
	Days       int `json:"days"`
}

// HijriSyncResponse returns the boundaries computed for a year.
type HijriSyncResponse struct {
	Year       int                  `json:"year"`
	Boundaries []HijriBoundaryEntry `json:"boundaries"`
	Warning    string               `json:"warning,omitempty"`
}

type HijriBoundaryEntry struct {
	Month          int    `json:"month"`
	GregorianFirst string `json:"gregorian_first"`
	HijriFirst     string `json:"hijri_first"`
	HijriLast      string `json:"hijri_last"`
}
