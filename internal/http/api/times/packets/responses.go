package packets

// PrayerDayResponse mirrors model.PrayerDay for the public surface.
type PrayerDayResponse struct {
	Date    string          `json:"date"`
	Timings TimingsResponse `json:"timings"`
}

type TimingsResponse struct {
	Fajr    string `json:"Fajr"`
	Shurooq string `json:"Shurooq"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}
