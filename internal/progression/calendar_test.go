package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextWeekStart(t *testing.T) {
	sunday := date(2025, time.June, 1)
	require.Equal(t, time.Sunday, sunday.Weekday())

	// a Sunday stays put
	assert.Equal(t, sunday, NextWeekStart(sunday))

	// any other day moves forward to the coming Sunday
	for daysAfter := 1; daysAfter <= 6; daysAfter++ {
		day := sunday.AddDate(0, 0, daysAfter)
		assert.Equal(t, sunday.AddDate(0, 0, 7), NextWeekStart(day), "from %s", day.Weekday())
	}

	// time of day is irrelevant
	lateMonday := time.Date(2025, time.June, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, date(2025, time.June, 8), NextWeekStart(lateMonday))
}

func TestPrevWeekStart(t *testing.T) {
	sunday := date(2025, time.June, 8)
	require.Equal(t, time.Sunday, sunday.Weekday())

	// a Sunday goes a full week back
	assert.Equal(t, sunday.AddDate(0, 0, -7), PrevWeekStart(sunday))

	// any other day moves back to the most recent Sunday
	for daysAfter := 1; daysAfter <= 6; daysAfter++ {
		day := sunday.AddDate(0, 0, daysAfter)
		assert.Equal(t, sunday, PrevWeekStart(day), "from %s", day.Weekday())
	}
}

func TestEnsureWeekStart(t *testing.T) {
	assert.NoError(t, EnsureWeekStart(date(2025, time.June, 1)))
	err := EnsureWeekStart(date(2025, time.June, 3))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStandardCycleRange(t *testing.T) {
	start := date(2025, time.June, 1)

	testCases := []struct {
		weekOffset   int
		expectedEnd  time.Time
		expectedDays int
	}{
		{weekOffset: 1, expectedEnd: date(2025, time.June, 28), expectedDays: 28},
		{weekOffset: 2, expectedEnd: date(2025, time.June, 21), expectedDays: 21},
		{weekOffset: 3, expectedEnd: date(2025, time.June, 14), expectedDays: 14},
		{weekOffset: 4, expectedEnd: date(2025, time.June, 7), expectedDays: 7},
	}
	for _, tc := range testCases {
		gotStart, gotEnd, err := StandardCycleRange(start, tc.weekOffset)
		require.NoError(t, err)
		assert.Equal(t, start, gotStart)
		assert.Equal(t, tc.expectedEnd, gotEnd)
		assert.Equal(t, tc.expectedDays, int(gotEnd.Sub(gotStart).Hours()/24)+1)
	}

	// start not on a week boundary
	_, _, err := StandardCycleRange(date(2025, time.June, 2), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// week offset out of range
	_, _, err = StandardCycleRange(start, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = StandardCycleRange(start, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBufferRange(t *testing.T) {
	// from a mid-week day: the week containing that day
	start, end := BufferRange(date(2025, time.June, 4)) // Wednesday
	assert.Equal(t, date(2025, time.June, 1), start)
	assert.Equal(t, date(2025, time.June, 7), end)

	// from a Sunday: the week before, ending right before that Sunday
	start, end = BufferRange(date(2025, time.June, 8))
	assert.Equal(t, date(2025, time.June, 1), start)
	assert.Equal(t, date(2025, time.June, 7), end)
}

func TestCycleAt(t *testing.T) {
	cycles := []Cycle{
		{StartDate: date(2025, time.June, 1), EndDate: date(2025, time.June, 7)},
		{StartDate: date(2025, time.June, 8), EndDate: date(2025, time.July, 5)},
	}

	assert.Equal(t, &cycles[0], CycleAt(cycles, date(2025, time.June, 1)))
	assert.Equal(t, &cycles[0], CycleAt(cycles, date(2025, time.June, 7)))
	assert.Equal(t, &cycles[1], CycleAt(cycles, date(2025, time.June, 8)))
	assert.Equal(t, &cycles[1], CycleAt(cycles, date(2025, time.July, 5)))
	assert.Nil(t, CycleAt(cycles, date(2025, time.July, 6)))
	assert.Nil(t, CycleAt(nil, date(2025, time.June, 1)))
}

func TestWeekOf(t *testing.T) {
	standard := Cycle{
		StartDate: date(2025, time.June, 8),
		EndDate:   date(2025, time.July, 5),
	}
	assert.Equal(t, 1, WeekOf(standard, date(2025, time.June, 8)))
	assert.Equal(t, 1, WeekOf(standard, date(2025, time.June, 14)))
	assert.Equal(t, 2, WeekOf(standard, date(2025, time.June, 15)))
	assert.Equal(t, 3, WeekOf(standard, date(2025, time.June, 22)))
	assert.Equal(t, 4, WeekOf(standard, date(2025, time.July, 5)))

	buffer := Cycle{
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.June, 7),
	}
	assert.True(t, buffer.IsBuffer())
	assert.Equal(t, 1, WeekOf(buffer, date(2025, time.June, 4)))
}

func TestLatest(t *testing.T) {
	assert.Nil(t, Latest(nil))

	cycles := []Cycle{
		{StartDate: date(2025, time.June, 8), EndDate: date(2025, time.July, 5)},
		{StartDate: date(2025, time.June, 1), EndDate: date(2025, time.June, 7)},
	}
	assert.Equal(t, &cycles[0], Latest(cycles))
}

func TestCycle_IsBuffer(t *testing.T) {
	assert.True(t, Cycle{
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.June, 7),
	}.IsBuffer())
	assert.False(t, Cycle{
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.June, 28),
	}.IsBuffer())
}

func TestWeights(t *testing.T) {
	w := Weights{Squat: 300, Bench: 200, Deadlift: 350, OverheadPress: 135}
	assert.Equal(t, 300.0, w.Of(LiftSquat))
	assert.Equal(t, 200.0, w.Of(LiftBench))
	assert.Equal(t, 350.0, w.Of(LiftDeadlift))
	assert.Equal(t, 135.0, w.Of(LiftOverheadPress))

	inc := Weights{Squat: 5, Bench: 5, Deadlift: 10, OverheadPress: 2.5}
	sum := w.Add(inc)
	assert.Equal(t, Weights{Squat: 305, Bench: 205, Deadlift: 360, OverheadPress: 137.5}, sum)

	assert.NoError(t, w.Validate())
	assert.ErrorIs(t, Weights{Squat: -1}.Validate(), ErrInvalidInput)
}
