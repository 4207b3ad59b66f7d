package app

import (
	"fmt"
	"time"
)

// DailySeed derives the selector seed from the locally observed calendar
// date: year + month + day. Different dates may collide; only within-day
// stability matters. Two processes observing different timezones can see
// different dates and therefore different question sets, as in the original
// game. See the design notes on timezone handling.
func DailySeed(t time.Time) int {
	return t.Year() + int(t.Month()) + t.Day()
}

// DateKey formats t as YYYY-M-D without zero padding, the persisted
// last-played format.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// ShareDate formats t as M/D/YYYY for the share title line.
func ShareDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// TimeUntilNextGame returns the duration until the next local midnight,
// when a fresh question set becomes available.
func TimeUntilNextGame(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, 1).Sub(now)
}

// FormatCountdown renders a duration as "13h 37m" for the next-game display.
func FormatCountdown(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
