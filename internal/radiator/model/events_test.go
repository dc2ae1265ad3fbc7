package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(min int) time.Time {
	return time.Date(2026, 8, 31, 10, min, 0, 0, time.UTC)
}

func TestSortEvents(t *testing.T) {
	events := []Event{
		{CreatedAt: at(30), Author: "carol", State: "APPROVED"},
		{CreatedAt: at(10), Author: "alice", State: EventCommented},
		{CreatedAt: at(20), Author: "bob", State: EventCommented},
	}

	SortEvents(events)

	assert.Equal(t, "alice", events[0].Author)
	assert.Equal(t, "bob", events[1].Author)
	assert.Equal(t, "carol", events[2].Author)
}

func TestCompressEvents(t *testing.T) {
	t.Run("adjacent runs collapse, interleaved events break them", func(t *testing.T) {
		events := []Event{
			{CreatedAt: at(1), Author: "alice", State: EventCommented},
			{CreatedAt: at(2), Author: "alice", State: EventCommented},
			{CreatedAt: at(3), Author: "bob", State: "APPROVED"},
			{CreatedAt: at(4), Author: "alice", State: EventCommented},
		}

		compressed := CompressEvents(events)
		require.Len(t, compressed, 3)

		assert.Equal(t, "alice", compressed[0].Author)
		assert.Equal(t, 2, compressed[0].Count)
		assert.Equal(t, at(1), compressed[0].CreatedAt)

		assert.Equal(t, "bob", compressed[1].Author)
		assert.Equal(t, "APPROVED", compressed[1].State)
		assert.Equal(t, 1, compressed[1].Count)

		assert.Equal(t, "alice", compressed[2].Author)
		assert.Equal(t, 1, compressed[2].Count)
	})

	t.Run("same author different state stays separate", func(t *testing.T) {
		events := []Event{
			{CreatedAt: at(1), Author: "alice", State: EventCommented},
			{CreatedAt: at(2), Author: "alice", State: "APPROVED"},
		}

		compressed := CompressEvents(events)
		require.Len(t, compressed, 2)
		assert.Equal(t, 1, compressed[0].Count)
		assert.Equal(t, 1, compressed[1].Count)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, CompressEvents(nil))
	})
}

func TestUnreviewed(t *testing.T) {
	reviewed := PullRequest{ReviewCount: 1}
	assert.False(t, reviewed.Unreviewed())

	commentedOnly := PullRequest{
		Events: []Event{{CreatedAt: at(1), Author: "alice", State: EventCommented}},
	}
	assert.True(t, commentedOnly.Unreviewed())
}
