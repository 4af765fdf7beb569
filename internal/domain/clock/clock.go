// Package clock normalizes schedule clock strings to fractional hours and
// repairs the AM/PM entry errors the source data is known to contain.
package clock

import (
	"strconv"
	"strings"
)

// Normalization constants.
const (
	// Noon substitutes for clock values that cannot be parsed, so one bad
	// record never aborts a scoring run.
	Noon = 12.0

	// MinDuration is the smallest displayable duration (15 minutes) used
	// when an interval stays non-positive after correction.
	MinDuration = 0.25

	halfDay   = 12.0
	maxHour   = 23
	perMinute = 1.0 / 60.0
)

// Parse converts a clock string ("HH:MM" or "HH:MM:SS") to fractional
// hours, e.g. "09:30" -> 9.5. Hours outside 0-23 are clamped into range.
// On malformed input it returns Noon together with ErrMalformedTime.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, ":") {
		return Noon, ErrMalformedTime
	}
	parts := strings.Split(s, ":")
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return Noon, ErrMalformedTime
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return Noon, ErrMalformedTime
	}
	if hours < 0 {
		hours = 0
	}
	if hours > maxHour {
		hours = maxHour
	}
	return float64(hours) + float64(minutes)*perMinute, nil
}

// Interval is a session's normalized time-of-day span. End is exclusive
// for duration purposes but the conflict overlap test is boundary-inclusive.
type Interval struct {
	Start float64
	End   float64

	// Corrected is true when the 12-hour entry-error heuristic fired.
	Corrected bool
	// Malformed is true when either clock failed to parse and was
	// substituted with Noon.
	Malformed bool
	// InvalidDuration is true when the interval stayed non-positive after
	// correction and the minimum duration was substituted.
	InvalidDuration bool
}

// Duration returns the interval length in fractional hours.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Normalize parses start and end and repairs inverted intervals. An end at
// or before the start is treated as a likely AM/PM entry error: 12 hours
// are added to the end, at most twice, so an afternoon session whose end
// was recorded as early morning lands past its start (14:00/02:00 becomes
// 14.0-26.0, a 12h span). Anything still non-positive gets MinDuration and
// is flagged rather than rejected; the record stays scorable.
func Normalize(start, end string) Interval {
	var iv Interval

	s, errS := Parse(start)
	e, errE := Parse(end)
	iv.Start = s
	iv.End = e
	iv.Malformed = errS != nil || errE != nil

	for i := 0; i < 2 && iv.End <= iv.Start; i++ {
		iv.End += halfDay
		iv.Corrected = true
	}
	if iv.End <= iv.Start {
		iv.End = iv.Start + MinDuration
		iv.InvalidDuration = true
	}
	return iv
}

// Format renders fractional hours back to "HH:MM" for display.
func Format(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return pad(h) + ":" + pad(m)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
