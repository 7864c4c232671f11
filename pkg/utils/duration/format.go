// ABOUTME: Duration formatting utilities for video lengths
// ABOUTME: Renders durations as HH:MM:SS clocks or short human-readable text

package duration

import (
	"fmt"
	"strings"
	"time"
)

// Clock formats d as HH:MM:SS, or MM:SS when under an hour
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d / time.Second)

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// HumanReadable converts d to text such as "2 hours 5 minutes"
func HumanReadable(d time.Duration) string {
	seconds := int(d / time.Second)
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}

	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
