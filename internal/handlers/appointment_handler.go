package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/httpresp"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
	ucAppointment "github.com/beautylink/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db         *gorm.DB
	transition *ucAppointment.TransitionAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	transition *ucAppointment.TransitionAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		transition: transition,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// Service/Employee podem ter sido apagados ou desativados depois;
	// o preload devolve nulo e os snapshots seguram a exibição.
	var aps []models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("Employee").
		Where("professional_id = ? AND date = ?", proID, dateStr).
		Order("time ASC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var appointments []models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("Employee").
		Where(
			"professional_id = ? AND date >= ? AND date < ?",
			proID, start.Format("2006-01-02"), end.Format("2006-01-02"),
		).
		Order("date ASC, time ASC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.applyTransition(c, h.transition.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.transition.Cancel)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.applyTransition(c, h.transition.MarkNoShow)
}

func (h *AppointmentHandler) applyTransition(
	c *gin.Context,
	fn func(ctx context.Context, proID, apID uint) (*models.Appointment, error),
) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := fn(c.Request.Context(), proID, uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento já está em estado final.")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DASHBOARD STATS
// ======================================================

// Stats resume o dia corrente: total, confirmados e faturamento dos
// concluídos (soma dos snapshots de preço).
func (h *AppointmentHandler) Stats(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err != nil {
		httperr.Internal(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	today := nowForPro(&pro).Format("2006-01-02")

	var total, confirmed int64
	h.db.Model(&models.Appointment{}).
		Where("professional_id = ? AND date = ?", proID, today).
		Count(&total)

	h.db.Model(&models.Appointment{}).
		Where("professional_id = ? AND date = ? AND status = ?", proID, today, "confirmed").
		Count(&confirmed)

	var revenue float64
	h.db.Model(&models.Appointment{}).
		Where("professional_id = ? AND date = ? AND status = ?", proID, today, "completed").
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue)

	c.JSON(200, gin.H{
		"date":      today,
		"total":     total,
		"confirmed": confirmed,
		"revenue":   revenue,
	})
}
