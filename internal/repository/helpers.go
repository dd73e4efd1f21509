package repository

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func timeToString(t time.Time) string {
	return t.Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func parseNullableTime(s *string, layout string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(layout, *s)
	if err != nil {
		return nil
	}
	return &t
}

// joinResources flattens a resource list into its stored form.
// Resource names never contain commas in this dataset.
func joinResources(rs []string) string {
	return strings.Join(rs, ",")
}

func splitResources(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
