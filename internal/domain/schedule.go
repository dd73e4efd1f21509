package domain

import "time"

// DateKey is a calendar date in ISO form ("2006-01-02"). It keys both the
// manager schedule and the per-baker task lists.
type DateKey string

const dateKeyLayout = "2006-01-02"

// DateKeyOf derives the DateKey for a timestamp's calendar date.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// ParseDateKey validates an ISO date string and returns it as a DateKey.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", err
	}
	return DateKeyOf(t), nil
}

// Time returns the midnight instant of the date in the local zone.
// A zero time is returned for a malformed key.
func (d DateKey) Time() time.Time {
	t, err := time.ParseInLocation(dateKeyLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Today returns the DateKey for the current local date.
func Today() DateKey {
	return DateKeyOf(time.Now())
}

// AddDays returns the key d shifted by the given number of days.
func (d DateKey) AddDays(n int) DateKey {
	return DateKeyOf(d.Time().AddDate(0, 0, n))
}
