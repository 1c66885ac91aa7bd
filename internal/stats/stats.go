// Package stats computes completion summaries and streaks over the check
// store. Everything here is recomputed from the store on every call; there is
// no cached state.
package stats

import (
	"math"
	"time"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/models"
	"github.com/mkhurana/reset/internal/protocol"
	"github.com/mkhurana/reset/internal/storage"
)

// CompletionForDay counts done items for one day in protocol order. Items
// without a stored row count as unchecked. Pct is rounded to one decimal and
// is 0.0 for an empty protocol.
func CompletionForDay(store storage.Provider, proto protocol.Protocol, day string) (models.CompletionStats, error) {
	checks, err := store.GetChecksForDay(day)
	if err != nil {
		return models.CompletionStats{}, err
	}

	done, total := 0, 0
	for _, section := range proto {
		for _, item := range section.Items {
			total++
			if checks[models.CheckKey{Section: section.Name, Item: item}] {
				done++
			}
		}
	}

	pct := 0.0
	if total > 0 {
		pct = round1(float64(done) / float64(total) * 100.0)
	}

	return models.CompletionStats{Day: day, Done: done, Total: total, Pct: pct}, nil
}

// CompletionHistory returns one entry per calendar day for the inclusive
// range [today-(days-1), today], oldest first. Days without data still get an
// entry with done=0.
func CompletionHistory(store storage.Provider, proto protocol.Protocol, days int, today time.Time) ([]models.CompletionStats, error) {
	if days <= 0 {
		return []models.CompletionStats{}, nil
	}

	history := make([]models.CompletionStats, 0, days)
	start := today.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format(constants.DateFormat)
		entry, err := CompletionForDay(store, proto, day)
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return history, nil
}

// CurrentStreak walks backward from today counting consecutive days at or
// above thresholdPct. The walk stops at the first day below threshold or past
// the earliest recorded day. Today is evaluated at its current live value, so
// unchecking items can drop the streak intraday.
func CurrentStreak(store storage.Provider, proto protocol.Protocol, thresholdPct float64, today time.Time) (int, error) {
	firstDay, err := store.FirstRecordedDay()
	if err != nil {
		return 0, err
	}
	if firstDay == "" {
		return 0, nil
	}

	floor, err := time.Parse(constants.DateFormat, firstDay)
	if err != nil {
		return 0, err
	}

	streak := 0
	cursor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	floor = time.Date(floor.Year(), floor.Month(), floor.Day(), 0, 0, 0, 0, time.UTC)
	for !cursor.Before(floor) {
		entry, err := CompletionForDay(store, proto, cursor.Format(constants.DateFormat))
		if err != nil {
			return 0, err
		}
		if entry.Pct < thresholdPct {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
