package utils

import (
	"strconv"
	"strings"
	"time"
)

// excelEpochOffsetDays is the day count between the spreadsheet serial
// epoch (1899-12-30) and the Unix epoch (1970-01-01).
const excelEpochOffsetDays = 25569

// dateLayouts are the accepted textual date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"01-02-06",
}

// ExcelSerialToTime converts a spreadsheet date serial into a wall-clock
// time in loc. The whole-day part counts days from the serial epoch and the
// fractional part encodes seconds-of-day.
func ExcelSerialToTime(serial float64, loc *time.Location) time.Time {
	utcDays := int64(serial) - excelEpochOffsetDays
	fractional := serial - float64(int64(serial))
	secondsOfDay := int64(86400 * fractional)

	t := time.Unix(utcDays*86400+secondsOfDay, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// ParseCellDate coerces one raw spreadsheet cell into a calendar date
// normalized to midnight in loc. It accepts a numeric date serial or any of
// the supported textual formats; empty or unparseable input yields nil
// rather than an error so optional date columns never fail a row.
func ParseCellDate(raw string, loc *time.Location) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var parsed time.Time
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		parsed = ExcelSerialToTime(serial, loc)
	} else {
		ok := false
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
				parsed, ok = t, true
				break
			}
		}
		if !ok {
			return nil
		}
	}

	midnight := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc)
	return &midnight
}
