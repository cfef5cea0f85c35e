package model

// HijriMonthBoundary maps one Gregorian month onto the official Hijri
// calendar: the Gregorian date of the month's first day and the Hijri
// dates of its first and last day. All dates are DD-MM-YYYY strings.
type HijriMonthBoundary struct {
	Month          int    `db:"month"           json:"month"`
	GregorianFirst string `db:"gregorian_first" json:"gregorian_first"`
	HijriFirst     string `db:"hijri_first"     json:"hijri_first"`
	HijriLast      string `db:"hijri_last"      json:"hijri_last"`
}
