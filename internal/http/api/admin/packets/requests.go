package packets

// ExecuteStrategyRequest names a stored strategy and carries the raw
// request parameters it should run with.
type ExecuteStrategyRequest struct {
	Strategy string         `json:"strategy" binding:"required"`
	Params   StrategyParams `json:"params"`
}

// StrategyParams is the JSON parameter blob passed to a strategy.
type StrategyParams struct {
	Method   int      `json:"method"`
	Duration int      `json:"duration"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
}

// PopulateCalendarRequest asks for a full calendar to be fetched and
// stored for one city and calculation method.
type PopulateCalendarRequest struct {
	City     string `json:"city" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Method   int    `json:"method"`
	Duration int    `json:"duration"`
}
