package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWeeklyLoad_Thresholds(t *testing.T) {
	// 35h00 exatas ainda é attention; o estouro exige passar de 35h.
	assert.Equal(t, LoadNormal, ClassifyWeeklyLoad(32*60+59))
	assert.Equal(t, LoadAttention, ClassifyWeeklyLoad(33*60))
	assert.Equal(t, LoadAttention, ClassifyWeeklyLoad(35*60))
	assert.Equal(t, LoadOverage, ClassifyWeeklyLoad(35*60+1))
}

func TestWeeklyMinutes(t *testing.T) {
	rules := map[Weekday]DayRule{
		Monday:  {Working: true, Window: Window{Start: 9 * 60, End: 18 * 60}},  // 9h
		Tuesday: {Working: true, Window: Window{Start: 9 * 60, End: 13 * 60}},  // 4h
		Friday:  {Working: false, Window: Window{Start: 9 * 60, End: 18 * 60}}, // folga
	}

	assert.Equal(t, 13*60, WeeklyMinutes(rules))
}

func TestWeeklyMinutes_IgnoresInvalidWindow(t *testing.T) {
	rules := map[Weekday]DayRule{
		Monday: {Working: true, Window: Window{Start: 18 * 60, End: 9 * 60}},
	}

	assert.Zero(t, WeeklyMinutes(rules))
}

func TestWeekBounds_MidWeek(t *testing.T) {
	// Quarta-feira 2025-10-22 → semana de segunda 20 a domingo 26.
	now := time.Date(2025, 10, 22, 15, 30, 0, 0, time.UTC)

	monday, sunday := WeekBounds(now, 0)

	assert.Equal(t, "2025-10-20", monday.Format("2006-01-02"))
	assert.Equal(t, "2025-10-26", sunday.Format("2006-01-02"))
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, time.Sunday, sunday.Weekday())
}

func TestWeekBounds_OnSunday(t *testing.T) {
	// Domingo pertence à semana que começou na segunda anterior, nunca à
	// seguinte.
	now := time.Date(2025, 10, 26, 9, 0, 0, 0, time.UTC)

	monday, sunday := WeekBounds(now, 0)

	assert.Equal(t, "2025-10-20", monday.Format("2006-01-02"))
	assert.Equal(t, "2025-10-26", sunday.Format("2006-01-02"))
}

func TestWeekBounds_OnMonday(t *testing.T) {
	now := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	monday, _ := WeekBounds(now, 0)
	assert.Equal(t, "2025-10-20", monday.Format("2006-01-02"))
}

func TestWeekBounds_Offset(t *testing.T) {
	now := time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC)

	prevMonday, _ := WeekBounds(now, -1)
	nextMonday, nextSunday := WeekBounds(now, 1)

	assert.Equal(t, "2025-10-13", prevMonday.Format("2006-01-02"))
	assert.Equal(t, "2025-10-27", nextMonday.Format("2006-01-02"))
	assert.Equal(t, "2025-11-02", nextSunday.Format("2006-01-02"))
}

func TestWeekBounds_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	now := time.Date(2025, 10, 22, 12, 0, 0, 0, loc)
	monday, _ := WeekBounds(now, 0)

	assert.Equal(t, loc, monday.Location())
	assert.Equal(t, 0, monday.Hour())
}
