package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMicros(t *testing.T) {
	assert.Equal(t, "850µs", FormatMicros(850))
	assert.Equal(t, "12.4ms", FormatMicros(12_400))
	assert.Equal(t, "1.2s", FormatMicros(1_200_000))
}

func TestFormatSpan(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)
	assert.Equal(t, "1m30s", FormatSpan(start.UnixNano(), end.UnixNano(), time.Time{}))
	assert.Equal(t, "2s", FormatSpan(start.UnixNano(), 0, start.Add(2*time.Second)))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", RelativeTime(now.UnixNano(), now))
	assert.Equal(t, "5s ago", RelativeTime(now.Add(-5*time.Second).UnixNano(), now))
	assert.Equal(t, "2m ago", RelativeTime(now.Add(-2*time.Minute).UnixNano(), now))
	assert.Equal(t, "3h ago", RelativeTime(now.Add(-3*time.Hour).UnixNano(), now))
	assert.Equal(t, "1d ago", RelativeTime(now.Add(-25*time.Hour).UnixNano(), now))
}
