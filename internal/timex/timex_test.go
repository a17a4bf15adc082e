package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"15m","b":1000000000}`), &v))
	assert.Equal(t, 15*time.Minute, v.A.Duration)
	assert.Equal(t, time.Second, v.B.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"soon"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &v))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 90 * time.Second})
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}

func TestNextStamp(t *testing.T) {
	now := time.Unix(0, 500)
	assert.Equal(t, int64(500), NextStamp(now, 100))
	assert.Equal(t, int64(900), NextStamp(now, 900))
}

func TestLogicalClock_NeverGoesBackwards(t *testing.T) {
	readings := []int64{100, 200, 150, 150, 300, 10}
	i := 0
	c := NewLogicalClock(ClockFunc(func() time.Time {
		ns := readings[i]
		i++
		return time.Unix(0, ns)
	}))

	var got []int64
	for range readings {
		got = append(got, c.Tick())
	}
	assert.Equal(t, []int64{100, 200, 200, 200, 300, 300}, got)
}

func TestNewLogicalClock_DefaultsToSystemClock(t *testing.T) {
	c := NewLogicalClock(nil)
	before := time.Now().UnixNano()
	assert.GreaterOrEqual(t, c.Tick(), before)
}
