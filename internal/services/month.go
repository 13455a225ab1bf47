package services

import (
	"time"

	apperrors "wealthyways/internal/errors"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// MonthKey returns the YYYY-MM key of t.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

// CurrentMonthKey returns the month key for today.
func CurrentMonthKey() string {
	return MonthKey(time.Now())
}

// ParseMonth validates a YYYY-MM key and returns the first day of that month.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidMonth, err)
	}
	return t, nil
}

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}
	return t, nil
}

// MonthRange returns the half-open [start, end) date bounds of month as
// YYYY-MM-DD strings, suitable for comparing against t_date.
func MonthRange(month string) (string, string, error) {
	start, err := ParseMonth(month)
	if err != nil {
		return "", "", err
	}
	return start.Format(dateLayout), start.AddDate(0, 1, 0).Format(dateLayout), nil
}
