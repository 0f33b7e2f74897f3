package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/domain/schedule"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

// Weekday chega como número 0-6 ou nome textual (inglês/francês),
// conforme o formulário legado que originou o dado. Canonizamos aqui,
// na borda — o resto do sistema só vê o inteiro.
type AvailabilityDayConfig struct {
	Weekday   json.RawMessage `json:"weekday" binding:"required"`
	Working   bool            `json:"working"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
}

type AvailabilityUpdateRequest struct {
	EmployeeID *uint                   `json:"employee_id"`
	Days       []AvailabilityDayConfig `json:"days" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	q := h.db.Where("professional_id = ?", proID)

	if empStr := c.Query("employee_id"); empStr != "" {
		empID, err := strconv.ParseUint(empStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee_id", "Funcionário inválido.")
			return
		}
		q = q.Where("employee_id = ?", uint(empID))
	} else {
		q = q.Where("employee_id IS NULL")
	}

	var rules []models.AvailabilityRule
	if err := q.Order("weekday ASC, id ASC").Find(&rules).Error; err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, rules)
}

// Update substitui a semana inteira do dono (salão ou funcionário) numa
// única transação — sem janela de disponibilidade parcialmente apagada
// entre o delete e os inserts.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.EmployeeID != nil {
		var count int64
		h.db.Model(&models.Employee{}).
			Where("id = ? AND professional_id = ?", *req.EmployeeID, proID).
			Count(&count)
		if count == 0 {
			httperr.NotFound(c, "employee_not_found", "Funcionário não encontrado.")
			return
		}
	}

	rules := make([]models.AvailabilityRule, 0, len(req.Days))
	seen := make(map[schedule.Weekday]int)

	for _, d := range req.Days {
		weekday, ok := parseWeekdayField(d.Weekday)
		if !ok {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
			return
		}

		rule := models.AvailabilityRule{
			ProfessionalID: proID,
			EmployeeID:     req.EmployeeID,
			Weekday:        int(weekday),
			Working:        d.Working,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
		}

		if d.Working {
			start, errS := schedule.ParseTimeOfDay(d.StartTime)
			end, errE := schedule.ParseTimeOfDay(d.EndTime)
			if errS != nil || errE != nil || start >= end {
				httperr.BadRequest(c, "invalid_time_range", "Horário de início deve ser antes do fim.")
				return
			}
		}

		// dia repetido no payload: o último vence
		if idx, dup := seen[weekday]; dup {
			rules[idx] = rule
			continue
		}

		seen[weekday] = len(rules)
		rules = append(rules, rule)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		del := tx.Where("professional_id = ?", proID)
		if req.EmployeeID != nil {
			del = del.Where("employee_id = ?", *req.EmployeeID)
		} else {
			del = del.Where("employee_id IS NULL")
		}

		if err := del.Delete(&models.AvailabilityRule{}).Error; err != nil {
			return err
		}

		if len(rules) > 0 {
			if err := tx.Create(&rules).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Erro ao salvar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseWeekdayField aceita o campo como número JSON ou string.
func parseWeekdayField(raw json.RawMessage) (schedule.Weekday, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		w := schedule.Weekday(n)
		return w, w.Valid()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return schedule.ParseWeekday(s)
	}

	return 0, false
}
