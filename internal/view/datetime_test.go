package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	tests := []struct {
		name   string
		value  any
		format string
		locale string
		want   string
	}{
		{"medium default", ts, "", "", "Tue 05, 21, 2019 9:30PM"},
		{"medium", ts, FormatMedium, "en_US", "Tue 05, 21, 2019 9:30PM"},
		{"full", ts, FormatFull, "en_US", "Tuesday May, 21, 2019 at 9:30PM"},
		{"rfc3339 string", "2019-05-21T21:30:00.000Z", FormatFull, "en_US", "Tuesday May, 21, 2019 at 9:30PM"},
		{"sql string", "2035-04-01 20:00:00", FormatMedium, "en_US", "Sun 04, 01, 2035 8:00PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDatetime(tt.value, tt.format, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDatetimeRejectsGarbage(t *testing.T) {
	_, err := FormatDatetime("tomorrow-ish", FormatMedium, "en_US")
	assert.Error(t, err)
	_, err = FormatDatetime(42, FormatMedium, "en_US")
	assert.Error(t, err)
}
