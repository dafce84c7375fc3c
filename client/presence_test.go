package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatLastActive(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"thirty seconds", 30 * time.Second, "Just now"},
		{"under a minute", 59 * time.Second, "Just now"},
		{"forty-five minutes", 45 * time.Minute, "45 min ago"},
		{"just under an hour", 59 * time.Minute, "59 min ago"},
		{"one hour", 60 * time.Minute, "1 hours ago"},
		{"twenty hours", 20 * time.Hour, "20 hours ago"},
		{"just under a day", 1439 * time.Minute, "23 hours ago"},
		{"one day", 24 * time.Hour, "1 days ago"},
		{"three days", 3 * 24 * time.Hour, "3 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatLastActive(now.Add(-tc.ago), now))
		})
	}
}
