package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_ValueIsFixedWidthUTC(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	ts := NewTimestamp(time.Date(2025, 3, 1, 12, 0, 0, 0, local))

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T10:00:00.000000000Z", v)

	earlier, _ := NewTimestamp(time.Date(2025, 3, 1, 9, 59, 59, 999000000, time.UTC)).Value()
	assert.Less(t, earlier.(string), v.(string), "text order must follow time order")
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2024, 12, 31, 23, 59, 1, 0, time.UTC)

	tests := []struct {
		name     string
		src      interface{}
		expected time.Time
	}{
		{"stored layout", "2024-12-31T23:59:01.000000000Z", want},
		{"rfc3339", "2024-12-31T23:59:01Z", want},
		{"rfc3339 with offset", "2025-01-01T00:59:01+01:00", want},
		{"bytes", []byte("2024-12-31T23:59:01Z"), want},
		{"time value", want, want},
		{"malformed", "not-a-date", Epoch},
		{"empty", "", Epoch},
		{"null", nil, Epoch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, ts.Scan(tt.src))
			assert.True(t, tt.expected.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_JSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-06-15T08:30:00Z"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, ts.Equal(decoded.Time))
}

func TestConstructorsApplyDefaults(t *testing.T) {
	emp := NewEmployee("client-1", "Alice", "Engineer", 1000, "active")
	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, "client-1", emp.ClientID)
	assert.False(t, emp.Paid)
	assert.False(t, emp.CreatedAt.IsZero())

	task := NewTask("client-1", "File taxes", "high")
	assert.False(t, task.Done)
	assert.NotEqual(t, emp.ID, task.ID)

	ev := NewEvent("client-1", "Standup", "", EventSchedule{StartDate: "2025-01-01", EndDate: "2025-01-01"}, "blue")
	assert.Equal(t, "2025-01-01", ev.StartDate)
	assert.Empty(t, ev.StartTime)
}
