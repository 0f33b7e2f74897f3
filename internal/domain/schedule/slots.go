package schedule

// ===============================
// Geração de horários (slots)
// ===============================

// Window é a janela de atendimento de um dia (salão ou funcionário).
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (w Window) Valid() bool {
	return w.Start.Valid() && w.End.Valid() && w.Start < w.End
}

// SteppingMode controla o algoritmo de geração.
type SteppingMode string

const (
	// SteppingContinuous avança minuto a minuto em passos da duração do
	// serviço, atravessando fronteiras de hora. É o padrão.
	SteppingContinuous SteppingMode = "continuous"

	// SteppingHourly reproduz o comportamento legado: o deslocamento em
	// minutos zera a cada hora cheia, o que gera lacunas (e sobreposições)
	// quando a duração não divide 60. Mantido atrás de flag de config.
	SteppingHourly SteppingMode = "hourly"
)

// Slots gera os horários de início possíveis dentro da janela, em ordem
// crescente. Janela ausente/inválida ou menor que a duração → lista vazia,
// nunca erro. Função pura.
func Slots(w Window, durationMin int, mode SteppingMode) []TimeOfDay {
	if durationMin <= 0 || !w.Valid() {
		return nil
	}

	if mode == SteppingHourly {
		return hourBoundedSlots(w, durationMin)
	}

	return continuousSlots(w, durationMin)
}

func continuousSlots(w Window, durationMin int) []TimeOfDay {
	var slots []TimeOfDay

	for cur := w.Start; cur.Add(durationMin) <= w.End; cur = cur.Add(durationMin) {
		slots = append(slots, cur)
	}

	return slots
}

// hourBoundedSlots: para cada hora entre Start e End, percorre os
// deslocamentos 0, d, 2d, ... dentro da hora. Comportamento herdado do
// sistema anterior — só considera a hora cheia da janela.
func hourBoundedSlots(w Window, durationMin int) []TimeOfDay {
	var slots []TimeOfDay

	startHour := w.Start.Hour()
	endHour := w.End.Hour()

	for hour := startHour; hour < endHour; hour++ {
		for minute := 0; minute < 60; minute += durationMin {
			slot := TimeOfDay(hour*60 + minute)
			if slot.Add(durationMin) <= TimeOfDay(endHour*60) {
				slots = append(slots, slot)
			}
		}
	}

	return slots
}

// FilterBooked remove da lista os horários já ocupados. O bloqueio é por
// início exato, não por sobreposição de intervalos — dois serviços de
// durações diferentes ainda podem se sobrepor no tempo real (limitação
// conhecida, ver checagem na submissão).
func FilterBooked(slots []TimeOfDay, booked []TimeOfDay) []TimeOfDay {
	if len(booked) == 0 {
		return slots
	}

	taken := make(map[TimeOfDay]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	free := make([]TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}

	return free
}
