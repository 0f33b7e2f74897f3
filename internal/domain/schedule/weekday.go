package schedule

import (
	"strconv"
	"strings"
	"time"
)

// ===============================
// Weekday canônico
// ===============================

// Weekday segue time.Weekday: Domingo=0 ... Sábado=6.
// A iteração Segunda-primeiro é responsabilidade do agregador semanal,
// nunca do tipo em si.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	return time.Weekday(w).String()
}

func FromTime(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// Dados legados gravaram o dia da semana de duas formas: inteiro 0-6
// e nome textual (inglês ou francês, conforme a origem do registro).
// A tradução acontece somente aqui, na borda — o núcleo só vê Weekday.
var weekdayNames = map[string]Weekday{
	"sunday":    Sunday,
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,

	"dimanche": Sunday,
	"lundi":    Monday,
	"mardi":    Tuesday,
	"mercredi": Wednesday,
	"jeudi":    Thursday,
	"vendredi": Friday,
	"samedi":   Saturday,
}

// ParseWeekday aceita as duas representações legadas.
func ParseWeekday(raw string) (Weekday, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		w := Weekday(n)
		return w, w.Valid()
	}

	w, ok := weekdayNames[s]
	return w, ok
}
