package client

import (
	"fmt"
	"time"
)

// FormatLastActive renders a last-active timestamp as the relative
// string shown next to offline users. Callers show "online" verbatim
// when the user's IsOnline flag is set; this only covers the offline
// case.
func FormatLastActive(lastActive, now time.Time) string {
	minutes := int(now.Sub(lastActive).Minutes())

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%d hours ago", minutes/60)
	default:
		return fmt.Sprintf("%d days ago", minutes/1440)
	}
}
