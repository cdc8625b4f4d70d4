package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shopradar/internal/domain/entity"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// MoveToFront puts item first in list, drops any other entry equal to it and
// truncates the result to limit entries.
func MoveToFront(list []string, item string, limit int, equal func(a, b string) bool) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, item)
	for _, existing := range list {
		if equal(existing, item) {
			continue
		}
		out = append(out, existing)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

const (
	statusOpened = "Opened"
	statusClosed = "Closed"
)

// StoreStatus reports whether a store is open at now according to its weekly hours.
// Stores without usable hours for today count as open.
func StoreStatus(hours []entity.OpeningHour, now time.Time) entity.StoreStatus {
	opened := entity.StoreStatus{Text: statusOpened, IsOpen: true}

	today := now.Weekday().String()
	var todayHours *entity.OpeningHour
	for i := range hours {
		if hours[i].Day == today {
			todayHours = &hours[i]

			break
		}
	}

	if todayHours == nil || todayHours.Open == "" || todayHours.Close == "" {
		return opened
	}

	openH, openM, ok := parseClock(todayHours.Open)
	if !ok {
		return opened
	}
	closeH, closeM, ok := parseClock(todayHours.Close)
	if !ok {
		return opened
	}

	openAt := time.Date(now.Year(), now.Month(), now.Day(), openH, openM, 0, 0, now.Location())
	closeAt := time.Date(now.Year(), now.Month(), now.Day(), closeH, closeM, 0, 0, now.Location())
	if closeAt.Before(openAt) {
		closeAt = closeAt.AddDate(0, 0, 1)
	}

	if now.Before(openAt) || now.After(closeAt) {
		return entity.StoreStatus{Text: statusClosed, IsOpen: false}
	}

	return entity.StoreStatus{
		Text:   fmt.Sprintf("%s (closes at %s)", statusOpened, closeAt.Format("15:04")),
		IsOpen: true,
	}
}

func parseClock(value string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
