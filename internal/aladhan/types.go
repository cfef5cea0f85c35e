package aladhan

// CalendarResponse is the envelope of the monthly calendar endpoints.
// Data holds one entry per day of the requested month.
type CalendarResponse struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   []CalendarDay `json:"data"`
}

// CalendarDay is one day of upstream prayer timings.
type CalendarDay struct {
	Timings DayTimings `json:"timings"`
	Date    DateInfo   `json:"date"`
}

// DayTimings contains the upstream timing fields as HH:MM strings.
// Note "Sunrise": the domain calls this Shurooq, mapped during
// normalization by the fetch strategies.
type DayTimings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// DateInfo carries both calendar systems for a day.
type DateInfo struct {
	Gregorian DatePart `json:"gregorian"`
	Hijri     DatePart `json:"hijri"`
}

// DatePart is one calendar system's rendering of a date.
// Timing calendars carry Date as DD-MM-YYYY; the Gregorian-to-Hijri
// conversion endpoint carries it as YYYY-MM-DD.
type DatePart struct {
	Date string `json:"date"`
	Day  string `json:"day"`
	Year string `json:"year"`
}

// ConversionResponse is the envelope of the Gregorian-to-Hijri
// calendar conversion endpoint.
type ConversionResponse struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   []ConversionDay `json:"data"`
}

// ConversionDay pairs a Gregorian date with its Hijri equivalent.
type ConversionDay struct {
	Gregorian DatePart `json:"gregorian"`
	Hijri     DatePart `json:"hijri"`
}

// MethodsResponse is the envelope of the method-catalog endpoint.
// Data maps method codes (e.g. "MWL", "ISNA") to catalog entries.
type MethodsResponse struct {
	Code   int                    `json:"code"`
	Status string                 `json:"status"`
	Data   map[string]MethodEntry `json:"data"`
}

// MethodEntry identifies one calculation method. Some entries in the
// upstream catalog (e.g. the CUSTOM placeholder) have no name.
type MethodEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
