package schedule

import "time"

// ===============================
// Carga horária semanal
// ===============================

// DayRule é a regra de disponibilidade de um dia, já canonizada.
type DayRule struct {
	Working bool
	Window  Window
}

// LoadLevel classifica a carga semanal de um funcionário.
// Limites fixos do negócio (jornada legal de 35h), não configuráveis.
type LoadLevel string

const (
	LoadNormal    LoadLevel = "normal"
	LoadAttention LoadLevel = "attention"
	LoadOverage   LoadLevel = "overage"
)

const (
	overageThresholdMin   = 35 * 60 // acima disso: estouro da jornada
	attentionThresholdMin = 33 * 60
)

// WeekBounds devolve a segunda-feira e o domingo da semana exibida.
// offset 0 = semana corrente, negativo = passado, positivo = futuro.
// A semana começa sempre na segunda, independente de locale.
func WeekBounds(now time.Time, offset int) (monday, sunday time.Time) {
	diff := int(Monday) - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		diff = -6
	}

	monday = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, diff+offset*7)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// WeeklyMinutes soma os minutos trabalhados nos 7 dias da semana.
// start < end é invariante das regras, então nunca soma negativo.
func WeeklyMinutes(rules map[Weekday]DayRule) int {
	total := 0

	for _, rule := range rules {
		if !rule.Working || !rule.Window.Valid() {
			continue
		}
		total += int(rule.Window.End - rule.Window.Start)
	}

	return total
}

// ClassifyWeeklyLoad aplica os limites em minutos inteiros:
// > 35h00 → overage (comparação estrita: 35h00 exatas ainda é attention);
// >= 33h00 → attention; abaixo → normal.
// Puramente informativo — nada impede salvar uma escala acima de 35h.
func ClassifyWeeklyLoad(totalMinutes int) LoadLevel {
	switch {
	case totalMinutes > overageThresholdMin:
		return LoadOverage
	case totalMinutes >= attentionThresholdMin:
		return LoadAttention
	default:
		return LoadNormal
	}
}
