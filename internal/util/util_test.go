package util

import (
	"strings"
	"testing"
	"time"

	"shopradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestMoveToFront(t *testing.T) {
	t.Parallel()

	caseInsensitive := strings.EqualFold
	exact := func(a, b string) bool { return a == b }

	tests := []struct {
		name     string
		list     []string
		item     string
		limit    int
		equal    func(a, b string) bool
		expected []string
	}{
		{name: "empty list", list: nil, item: "milk", limit: 5, equal: caseInsensitive, expected: []string{"milk"}},
		{name: "existing moves to front", list: []string{"bread", "Milk", "eggs"}, item: "milk", limit: 5, equal: caseInsensitive, expected: []string{"milk", "bread", "eggs"}},
		{name: "truncated to limit", list: []string{"a", "b", "c"}, item: "d", limit: 3, equal: exact, expected: []string{"d", "a", "b"}},
		{name: "exact match keeps other case", list: []string{"Milk"}, item: "milk", limit: 5, equal: exact, expected: []string{"milk", "Milk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MoveToFront(tt.list, tt.item, tt.limit, tt.equal))
		})
	}
}

func TestStoreStatus(t *testing.T) {
	t.Parallel()

	// 2026-10-19 is a Monday.
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 10, 19, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		hours    []entity.OpeningHour
		now      time.Time
		expected entity.StoreStatus
	}{
		{
			name:     "no hours",
			now:      at(12, 0),
			expected: entity.StoreStatus{Text: "Opened", IsOpen: true},
		},
		{
			name:     "no entry for today",
			hours:    []entity.OpeningHour{{Day: "Sunday", Open: "09:00", Close: "17:00"}},
			now:      at(12, 0),
			expected: entity.StoreStatus{Text: "Opened", IsOpen: true},
		},
		{
			name:     "open now",
			hours:    []entity.OpeningHour{{Day: "Monday", Open: "09:00", Close: "17:00"}},
			now:      at(12, 0),
			expected: entity.StoreStatus{Text: "Opened (closes at 17:00)", IsOpen: true},
		},
		{
			name:     "closed after hours",
			hours:    []entity.OpeningHour{{Day: "Monday", Open: "09:00", Close: "17:00"}},
			now:      at(18, 30),
			expected: entity.StoreStatus{Text: "Closed", IsOpen: false},
		},
		{
			name:     "overnight window",
			hours:    []entity.OpeningHour{{Day: "Monday", Open: "22:00", Close: "02:00"}},
			now:      at(23, 0),
			expected: entity.StoreStatus{Text: "Opened (closes at 02:00)", IsOpen: true},
		},
		{
			name:     "malformed hours",
			hours:    []entity.OpeningHour{{Day: "Monday", Open: "nine", Close: "17:00"}},
			now:      at(6, 0),
			expected: entity.StoreStatus{Text: "Opened", IsOpen: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, StoreStatus(tt.hours, tt.now))
		})
	}
}
