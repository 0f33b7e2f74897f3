package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func window(t *testing.T, start, end string) Window {
	t.Helper()
	return Window{Start: mustTime(t, start), End: mustTime(t, end)}
}

func TestSlotsContinuous_FullDay(t *testing.T) {
	// 09:00-18:00 com serviço de 30min = 18 horários de início.
	slots := Slots(window(t, "09:00", "18:00"), 30, SteppingContinuous)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "09:30", slots[1].String())
	assert.Equal(t, "17:30", slots[17].String())
}

func TestSlotsContinuous_LastSlotFits(t *testing.T) {
	// Último início + duração nunca passa do fim da janela.
	slots := Slots(window(t, "09:00", "10:00"), 45, SteppingContinuous)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].String())
}

func TestSlotsContinuous_CrossesHourBoundary(t *testing.T) {
	slots := Slots(window(t, "09:00", "11:00"), 45, SteppingContinuous)

	// 09:00, 09:45; o próximo seria 10:30, mas 10:30+45 passa de 11:00.
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "09:45", slots[1].String())
}

func TestSlotsHourly_OffsetResetsEachHour(t *testing.T) {
	// Modo legado: com 45min o deslocamento zera a cada hora, gerando
	// inícios em sobreposição real (09:45+45 = 10:30, que cruza o 10:00).
	slots := Slots(window(t, "09:00", "11:00"), 45, SteppingHourly)

	got := make([]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"09:00", "09:45", "10:00"}, got)
}

func TestSlotsHourly_DropsWindowMinutes(t *testing.T) {
	// Janela 09:30-11:30: o modo legado considera só a hora cheia,
	// então oferece 09:00 (antes da abertura) e ignora 11:00-11:30.
	slots := Slots(window(t, "09:30", "11:30"), 30, SteppingHourly)

	got := make([]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got)
}

func TestSlotsHourly_MatchesContinuousOnAlignedWindows(t *testing.T) {
	// Durações que dividem 60 em janelas de hora cheia: os dois modos
	// coincidem.
	w := window(t, "09:00", "18:00")

	assert.Equal(t,
		Slots(w, 30, SteppingContinuous),
		Slots(w, 30, SteppingHourly),
	)
}

func TestSlots_EmptyCases(t *testing.T) {
	assert.Empty(t, Slots(window(t, "09:00", "18:00"), 0, SteppingContinuous))
	assert.Empty(t, Slots(Window{}, 30, SteppingContinuous))

	// janela invertida
	assert.Empty(t, Slots(window(t, "18:00", "09:00"), 30, SteppingContinuous))

	// janela menor que a duração
	assert.Empty(t, Slots(window(t, "09:00", "09:20"), 30, SteppingContinuous))
}

func TestFilterBooked(t *testing.T) {
	slots := Slots(window(t, "09:00", "12:00"), 60, SteppingContinuous)
	require.Len(t, slots, 3)

	free := FilterBooked(slots, []TimeOfDay{mustTime(t, "10:00")})

	require.Len(t, free, 2)
	assert.Equal(t, "09:00", free[0].String())
	assert.Equal(t, "11:00", free[1].String())
}

func TestFilterBooked_ExactStartOnly(t *testing.T) {
	// O bloqueio é por início exato: um horário ocupado às 10:15 não
	// derruba o slot das 10:00 mesmo que os intervalos se cruzem.
	slots := Slots(window(t, "10:00", "11:00"), 30, SteppingContinuous)

	free := FilterBooked(slots, []TimeOfDay{mustTime(t, "10:15")})
	assert.Equal(t, slots, free)
}

func TestFilterBooked_NoBookings(t *testing.T) {
	slots := Slots(window(t, "09:00", "10:00"), 30, SteppingContinuous)
	assert.Equal(t, slots, FilterBooked(slots, nil))
}
