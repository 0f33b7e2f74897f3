package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/domain/schedule"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
)

// ======================================================
// Escala semanal (planner)
// ======================================================

type PlannerHandler struct {
	db *gorm.DB
}

func NewPlannerHandler(db *gorm.DB) *PlannerHandler {
	return &PlannerHandler{db: db}
}

type PlannerDay struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"`
	Working bool   `json:"working"`
	Start   string `json:"start_time,omitempty"`
	End     string `json:"end_time,omitempty"`
}

type PlannerEmployee struct {
	Employee     models.Employee    `json:"employee"`
	Days         []PlannerDay       `json:"days"`
	TotalMinutes int                `json:"total_minutes"`
	TotalHours   float64            `json:"total_hours"`
	Load         schedule.LoadLevel `json:"load"`
}

// Week monta a escala de segunda a domingo para a semana exibida
// (offset 0 = corrente) e classifica a carga de cada funcionário contra
// a jornada legal de 35h. Só informativo: estourar 35h não bloqueia nada.
func (h *PlannerHandler) Week(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	offset := 0
	if v := c.Query("week_offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_week_offset", "Offset de semana inválido.")
			return
		}
		offset = n
	}

	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err != nil {
		httperr.Internal(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	monday, sunday := schedule.WeekBounds(nowForPro(&pro), offset)

	var employees []models.Employee
	if err := h.db.
		Where("professional_id = ? AND active = true", proID).
		Order("id ASC").
		Find(&employees).Error; err != nil {

		httperr.Internal(c, "failed_to_list_employees", "Erro ao listar funcionários.")
		return
	}

	result := make([]PlannerEmployee, 0, len(employees))

	for _, emp := range employees {
		rules, err := h.employeeRules(proID, emp.ID)
		if err != nil {
			httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar disponibilidade.")
			return
		}

		days := make([]PlannerDay, 0, 7)
		for i := 0; i < 7; i++ {
			date := monday.AddDate(0, 0, i)
			weekday := schedule.FromTime(date)

			day := PlannerDay{
				Date:    date.Format("2006-01-02"),
				Weekday: int(weekday),
			}

			if rule, ok := rules[weekday]; ok && rule.Working {
				day.Working = true
				day.Start = rule.Window.Start.String()
				day.End = rule.Window.End.String()
			}

			days = append(days, day)
		}

		total := schedule.WeeklyMinutes(rules)

		result = append(result, PlannerEmployee{
			Employee:     emp,
			Days:         days,
			TotalMinutes: total,
			TotalHours:   float64(total) / 60,
			Load:         schedule.ClassifyWeeklyLoad(total),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start": monday.Format("2006-01-02"),
		"week_end":   sunday.Format("2006-01-02"),
		"employees":  result,
	})
}

// employeeRules carrega as regras do funcionário já canonizadas;
// duplicatas do mesmo dia resolvem por última-vence (ordem por id).
func (h *PlannerHandler) employeeRules(proID, empID uint) (map[schedule.Weekday]schedule.DayRule, error) {
	var rows []models.AvailabilityRule
	if err := h.db.
		Where("professional_id = ? AND employee_id = ?", proID, empID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rules := make(map[schedule.Weekday]schedule.DayRule, len(rows))
	for _, row := range rows {
		weekday := schedule.Weekday(row.Weekday)
		if !weekday.Valid() {
			continue
		}

		rule := schedule.DayRule{Working: row.Working}
		if row.Working {
			start, errS := schedule.ParseTimeOfDay(row.StartTime)
			end, errE := schedule.ParseTimeOfDay(row.EndTime)
			if errS != nil || errE != nil {
				continue
			}
			rule.Window = schedule.Window{Start: start, End: end}
		}

		rules[weekday] = rule
	}

	return rules, nil
}
