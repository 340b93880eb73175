package projection

import (
	"time"

	"github.com/ymori/portfolio-server/internal/fields"
)

// timestampLayouts are tried in order when parsing a stored timestamp field.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a stored timestamp value defensively. Strings are
// tried against the known layouts; JSON numbers are read as epoch seconds
// (or milliseconds when implausibly large). Unparsable values report false
// rather than epoch zero.
func parseTimestamp(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		s := fields.ToScalar(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case float64:
		if v <= 0 {
			return time.Time{}, false
		}
		// Epoch milliseconds when the value is too large for seconds.
		if v > 1e12 {
			return time.UnixMilli(int64(v)).UTC(), true
		}
		return time.Unix(int64(v), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

// latestTimestamp returns the max over the storage-level update time and any
// parsable timestamp fields named by keys. Missing or unparsable sources are
// excluded from the max; the zero time means no source was available.
func latestTimestamp(record map[string]any, storageUpdatedAt time.Time, keys ...string) time.Time {
	latest := storageUpdatedAt
	for _, key := range keys {
		value, ok := record[key]
		if !ok {
			continue
		}
		if t, parsed := parseTimestamp(value); parsed && t.After(latest) {
			latest = t
		}
	}
	return latest
}
