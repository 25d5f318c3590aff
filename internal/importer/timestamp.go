package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp decodes the datetime encodings found in exported documents:
// RFC 3339 strings, naive ISO strings (taken as UTC) and extended JSON
// {"$date": ...} wrappers. It always encodes as RFC 3339 in UTC.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Date json.RawMessage `json:"$date"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		if len(wrapped.Date) == 0 {
			return fmt.Errorf("timestamp object without $date")
		}
		return t.unmarshalDate(wrapped.Date)
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// unmarshalDate handles the $date payload: a string, epoch milliseconds,
// or {"$numberLong": "<ms>"}.
func (t *Timestamp) unmarshalDate(raw json.RawMessage) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := parseTimestamp(s)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}

	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	var long struct {
		NumberLong string `json:"$numberLong"`
	}
	if err := json.Unmarshal(raw, &long); err != nil || long.NumberLong == "" {
		return fmt.Errorf("unsupported $date value %s", raw)
	}
	ms, err := strconv.ParseInt(long.NumberLong, 10, 64)
	if err != nil {
		return fmt.Errorf("$numberLong %q: %w", long.NumberLong, err)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return v.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if v, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return v, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
