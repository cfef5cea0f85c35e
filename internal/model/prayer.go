package model

// PrayerTimeRequest carries the parameters of a prayer-times lookup.
// Exactly one location shape is expected: coordinates (Lat/Lon) or a
// named city (City/Country). Lat and Lon are pointers so that absence
// is distinguishable from zero.
type PrayerTimeRequest struct {
	Method   int      `json:"method"`
	Duration int      `json:"duration"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	City     string   `json:"city,omitempty"`
	Country  string   `json:"country,omitempty"`
}

// HasCoordinates reports whether both coordinates are present.
func (r PrayerTimeRequest) HasCoordinates() bool {
	return r.Lat != nil && r.Lon != nil
}

// Timings holds the six daily prayer times as HH:MM strings.
// The upstream API reports sunrise as "Sunrise"; the domain name is Shurooq.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Shurooq string `json:"Shurooq"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// PrayerDay is one day of normalized prayer times.
// Date is formatted DD-MM-YYYY. Immutable once produced.
type PrayerDay struct {
	Date    string  `json:"date"`
	Timings Timings `json:"timings"`
}
