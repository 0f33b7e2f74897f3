package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/httpresp"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
)

const auditLogsMaxLimit = 200

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve a trilha de auditoria do profissional, mais recente
// primeiro. Filtro opcional por ação (?action=appointment_created).
func (h *AuditLogsHandler) List(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= auditLogsMaxLimit {
			limit = v
		}
	}

	q := h.db.
		Where("professional_id = ?", proID).
		Order("id DESC").
		Limit(limit)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
