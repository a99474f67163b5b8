package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the textual form timestamps are stored in. It is fixed
// width and always UTC so that ordering by the text column orders by time.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Epoch is what a stored timestamp that cannot be parsed reads back as
var Epoch = time.Unix(0, 0).UTC()

// Timestamp is a time.Time persisted as text
type Timestamp struct {
	time.Time
}

// Now returns the current time as a Timestamp
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC()}
}

// NewTimestamp wraps t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Value implements driver.Valuer
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format(TimestampLayout), nil
}

// Scan implements sql.Scanner. Unparseable values become Epoch rather than
// failing the whole row.
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time = Epoch
	case time.Time:
		t.Time = v.UTC()
	case string:
		t.Time = parseTimestamp(v)
	case []byte:
		t.Time = parseTimestamp(string(v))
	default:
		t.Time = parseTimestamp(fmt.Sprint(v))
	}
	return nil
}

// MarshalJSON renders the timestamp as RFC 3339
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts RFC 3339
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{TimestampLayout, time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC()
		}
	}
	return Epoch
}
