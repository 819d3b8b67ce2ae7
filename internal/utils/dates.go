package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return d, nil
}

// DaysBetween returns the whole-day difference end - start.
// Both dates must be yyyy-mm-dd.
func DaysBetween(startStr, endStr string) (int32, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}
	return int32(end.Sub(start).Hours() / 24), nil
}

// LengthOfStayDays returns the billable days of a stay:
// max(1, dischargeDate - admitDate). A same-day admit and discharge counts
// as one billable day.
func LengthOfStayDays(admitDate, dischargeDate string) (int32, error) {
	days, err := DaysBetween(admitDate, dischargeDate)
	if err != nil {
		return 0, err
	}
	if days < 0 {
		return 0, fmt.Errorf("discharge date %s is before admit date %s", dischargeDate, admitDate)
	}
	if days < 1 {
		return 1, nil
	}
	return days, nil
}
