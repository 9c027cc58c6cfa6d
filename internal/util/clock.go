// internal/util/clock.go
// Abstraksi waktu agar rentang tanggal default bisa diuji

package util

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock selalu mengembalikan waktu yang sama (untuk test).
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }

// DayRange: [now-days, now] dalam format YYYY-MM-DD.
func DayRange(c Clock, days int) (start, end string) {
	now := c.Now()
	return now.AddDate(0, 0, -days).Format(time.DateOnly), now.Format(time.DateOnly)
}
