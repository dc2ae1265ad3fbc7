package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeBucketAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		age      time.Duration
		expected AgeBucket
	}{
		{"brand new", time.Minute, AgeLastHour},
		{"59 minutes", 59 * time.Minute, AgeLastHour},
		{"exactly one hour", time.Hour, AgeLastTwoHours},
		{"61 minutes", 61 * time.Minute, AgeLastTwoHours},
		{"three hours", 3 * time.Hour, AgeLastDay},
		{"exactly one day", 24 * time.Hour, AgeLastWeek},
		{"six days", 6 * 24 * time.Hour, AgeLastWeek},
		{"exactly one week", 7 * 24 * time.Hour, AgeOverWeekOld},
		{"eight days", 8 * 24 * time.Hour, AgeOverWeekOld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AgeBucketAt(now.Add(-tt.age), now))
		})
	}
}

func TestCheckStateFrom(t *testing.T) {
	state := func(s string) *string { return &s }

	tests := []struct {
		name     string
		rollup   *string
		expected CheckState
	}{
		{"success", state("SUCCESS"), ChecksSuccess},
		{"pending", state("PENDING"), ChecksPending},
		{"expected counts as pending", state("EXPECTED"), ChecksPending},
		{"failure", state("FAILURE"), ChecksFailure},
		{"error", state("ERROR"), ChecksError},
		{"lower case accepted", state("success"), ChecksSuccess},
		{"unknown state", state("SOMETHING_NEW"), ChecksNone},
		{"no rollup", nil, ChecksNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckStateFrom(tt.rollup))
		})
	}
}
