package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday_Numeric(t *testing.T) {
	w, ok := ParseWeekday("0")
	require.True(t, ok)
	assert.Equal(t, Sunday, w)

	w, ok = ParseWeekday("6")
	require.True(t, ok)
	assert.Equal(t, Saturday, w)

	_, ok = ParseWeekday("7")
	assert.False(t, ok)

	_, ok = ParseWeekday("-1")
	assert.False(t, ok)
}

func TestParseWeekday_Names(t *testing.T) {
	cases := map[string]Weekday{
		"monday":    Monday,
		"Monday":    Monday,
		"  friday ": Friday,

		// nomes franceses do formulário original
		"lundi":    Monday,
		"Mercredi": Wednesday,
		"dimanche": Sunday,
		"samedi":   Saturday,
	}

	for raw, want := range cases {
		w, ok := ParseWeekday(raw)
		require.True(t, ok, "parse %q", raw)
		assert.Equal(t, want, w, "parse %q", raw)
	}
}

func TestParseWeekday_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "someday", "lundi-matin"} {
		_, ok := ParseWeekday(raw)
		assert.False(t, ok, "parse %q", raw)
	}
}

func TestFromTime_MatchesStdlib(t *testing.T) {
	d := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC) // segunda
	assert.Equal(t, Monday, FromTime(d))
	assert.Equal(t, Sunday, FromTime(d.AddDate(0, 0, 6)))
}
