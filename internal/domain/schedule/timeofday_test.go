package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*60+30), v)

	// formato com segundos do backend legado
	v, err = ParseTimeOfDay("14:05:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(14*60+5), v)

	v, err = ParseTimeOfDay(" 00:00 ")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(0), v)
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, raw := range []string{"", "9h30", "24:00", "12:60", "12", "a:b"} {
		_, err := ParseTimeOfDay(raw)
		assert.Error(t, err, "parse %q", raw)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(9*60+5).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(23*60+59).String())
}

func TestTimeOfDay_Add(t *testing.T) {
	v := TimeOfDay(9 * 60)
	assert.Equal(t, "09:45", v.Add(45).String())
	assert.Equal(t, "10:30", v.Add(90).String())
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal(TimeOfDay(17 * 60))
	require.NoError(t, err)
	assert.Equal(t, `"17:00"`, string(b))
}
