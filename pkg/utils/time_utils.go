// utils/timeutil.go
package utils

import "time"

// Israel time (IST/IDT)
var ilLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jerusalem"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 2*3600)
}()

// Store seconds consistently in the DB.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// Convert an epoch value in seconds to local house time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsIL(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(ilLoc)
}

func FormatRFC3339IL(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(ilLoc).Format(time.RFC3339)
}
