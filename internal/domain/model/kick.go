package model

import "time"

// Kick is a single logged movement owned by exactly one user.
type Kick struct {
	ID        string
	UserID    string
	Timestamp time.Time
	Note      *string
	CreatedAt time.Time
}

// DayLayout is the calendar date format used for day keys and query parameters.
const DayLayout = "2006-01-02"

// DailyTotal is the number of kicks logged on one calendar date.
type DailyTotal struct {
	Date  string
	Count int
}

// DailySummary compares the tally of one calendar date against the daily target.
type DailySummary struct {
	Date      string
	Count     int
	Target    int
	Remaining int
	GoalMet   bool
}

// TimeWindow is a half-open [From, To) interval.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

// DayWindow returns the window covering the whole calendar day containing t in loc.
// Using the next midnight as the upper bound keeps 23h and 25h DST days correct.
func DayWindow(t time.Time, loc *time.Location) TimeWindow {
	local := t.In(loc)
	y, m, d := local.Date()
	return TimeWindow{
		From: time.Date(y, m, d, 0, 0, 0, 0, loc),
		To:   time.Date(y, m, d+1, 0, 0, 0, 0, loc),
	}
}

// Contains reports whether ts falls inside the window.
func (w TimeWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.From) && ts.Before(w.To)
}
