package crypto

import "time"

// timestampLayout is ISO-8601 UTC with millisecond precision and a literal Z
// suffix, the wire format for every timestamp this module emits.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t as millisecond-precision UTC, e.g. "2024-01-02T03:04:05.006Z".
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Now returns Timestamp(time.Now()).
func Now() string {
	return Timestamp(time.Now())
}

// ParseTimestamp accepts both strict RFC 3339 (with offset) and the
// millisecond-precision Z form this module emits. It returns an error if
// neither layout matches; callers that want permissive-on-ingest behavior
// treat that error as "pass" rather than "fail".
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
