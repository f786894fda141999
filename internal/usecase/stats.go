package usecase

import (
	"time"

	"github.com/polkiloo/kicktracker/internal/domain/model"
)

// AggregateDaily groups kicks by the calendar date of their timestamp in loc.
// Dates are emitted in the order first seen, so ascending input gives ascending
// output. Days without kicks are not synthesized.
func AggregateDaily(kicks []model.Kick, loc *time.Location) []model.DailyTotal {
	result := make([]model.DailyTotal, 0)
	index := make(map[string]int)
	for _, k := range kicks {
		day := k.Timestamp.In(loc).Format(model.DayLayout)
		if i, ok := index[day]; ok {
			result[i].Count++
			continue
		}
		index[day] = len(result)
		result = append(result, model.DailyTotal{Date: day, Count: 1})
	}
	return result
}

// Summarize compares count against target.
func Summarize(day string, count, target int) *model.DailySummary {
	remaining := target - count
	if remaining < 0 {
		remaining = 0
	}
	return &model.DailySummary{
		Date:      day,
		Count:     count,
		Target:    target,
		Remaining: remaining,
		GoalMet:   count >= target,
	}
}
