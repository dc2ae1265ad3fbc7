package model

import (
	"strings"
	"time"
)

const (
	hour = time.Hour
	day  = 24 * time.Hour
	week = 7 * day
)

// AgeBucketAt classifies how long ago t happened relative to now. Buckets
// are evaluated narrowest first; a boundary value falls into the wider
// bucket.
func AgeBucketAt(t, now time.Time) AgeBucket {
	age := now.Sub(t)
	switch {
	case age < hour:
		return AgeLastHour
	case age < 2*hour:
		return AgeLastTwoHours
	case age < day:
		return AgeLastDay
	case age < week:
		return AgeLastWeek
	default:
		return AgeOverWeekOld
	}
}

// CheckStateFrom maps a status-check rollup state to a CheckState. A nil
// rollup means the commit has no checks configured, which renders the same
// as an unknown state.
func CheckStateFrom(rollup *string) CheckState {
	if rollup == nil {
		return ChecksNone
	}
	switch strings.ToUpper(*rollup) {
	case "SUCCESS":
		return ChecksSuccess
	case "PENDING", "EXPECTED":
		return ChecksPending
	case "FAILURE":
		return ChecksFailure
	case "ERROR":
		return ChecksError
	default:
		return ChecksNone
	}
}
