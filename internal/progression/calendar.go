package progression

import (
	"fmt"
	"time"
)

// Training weeks start on Sunday. A standard cycle is 4 weeks, a buffer
// cycle fills the single week between "now" and the next standard cycle.
const (
	weekStartDay = time.Sunday

	standardCycleDays = 28
	bufferCycleDays   = 7

	weeksPerCycle = 4
)

// Midnight strips the time-of-day part, keeping the date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextWeekStart moves t forward to the next week boundary.
// A date already on the boundary stays put.
func NextWeekStart(t time.Time) time.Time {
	t = Midnight(t)
	daysAhead := (int(weekStartDay) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, daysAhead)
}

// PrevWeekStart moves t back to the previous week boundary,
// always strictly before t's week start: a Sunday goes a full week back.
func PrevWeekStart(t time.Time) time.Time {
	t = Midnight(t)
	daysBack := (int(t.Weekday())-int(weekStartDay)+6)%7 + 1
	return t.AddDate(0, 0, -daysBack)
}

// EnsureWeekStart validates that t falls on the week boundary weekday.
func EnsureWeekStart(t time.Time) error {
	if t.Weekday() != weekStartDay {
		return fmt.Errorf("%w: %s is not a %s", ErrInvalidInput, t.Format(time.DateOnly), weekStartDay)
	}
	return nil
}

// StandardCycleRange returns the date range of a standard cycle beginning
// on the given week of the percentage table. The start date must be
// boundary-aligned; weekOffset 1 yields the full 28-day range, each higher
// offset shortens the range by a week.
func StandardCycleRange(start time.Time, weekOffset int) (time.Time, time.Time, error) {
	start = Midnight(start)
	if err := EnsureWeekStart(start); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if weekOffset < 1 || weekOffset > weeksPerCycle {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: week offset %d out of range [1,%d]", ErrInvalidInput, weekOffset, weeksPerCycle)
	}
	end := start.AddDate(0, 0, standardCycleDays-1-7*(weekOffset-1))
	return start, end, nil
}

// BufferRange returns the one-week range ending right before ref's week:
// it starts on the week boundary strictly before ref.
func BufferRange(ref time.Time) (time.Time, time.Time) {
	start := PrevWeekStart(ref)
	return start, start.AddDate(0, 0, bufferCycleDays-1)
}

// CycleAt returns the stored cycle whose range contains the given date,
// or nil if none does. The engine keeps ranges non-overlapping, so at most
// one cycle can match.
func CycleAt(cycles []Cycle, on time.Time) *Cycle {
	for i := range cycles {
		if cycles[i].Contains(on) {
			return &cycles[i]
		}
	}
	return nil
}

// WeekOf returns the 1-based training week the given date falls into within
// the cycle. Buffer cycles are always week 1. The date must be within the
// cycle's range.
func WeekOf(c Cycle, on time.Time) int {
	if c.IsBuffer() {
		return 1
	}
	return int(Midnight(on).Sub(c.StartDate)/(24*time.Hour))/7 + 1
}

// Latest returns the cycle with the maximum end date, or nil for an empty set.
func Latest(cycles []Cycle) *Cycle {
	var latest *Cycle
	for i := range cycles {
		if latest == nil || cycles[i].EndDate.After(latest.EndDate) {
			latest = &cycles[i]
		}
	}
	return latest
}
