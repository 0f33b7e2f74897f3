package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/cache"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/httpresp"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewServiceHandler(db *gorm.DB, c *cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var services []models.Service
	if err := h.db.
		Where("professional_id = ?", proID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		ProfessionalID: proID,
		Name:           req.Name,
		DurationMin:    req.DurationMin,
		Price:          req.Price,
		Active:         true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.invalidatePublicCard(c, proID)

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND professional_id = ?", id, proID).
		First(&svc).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc.Name = req.Name
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar serviço.")
		return
	}

	h.invalidatePublicCard(c, proID)

	c.JSON(http.StatusOK, svc)
}

// Delete remove o serviço de verdade. Agendamentos históricos continuam
// legíveis: guardam snapshots de duração/preço e o service_id vira nulo.
func (h *ServiceHandler) Delete(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND professional_id = ?", id, proID).
		Delete(&models.Service{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	h.invalidatePublicCard(c, proID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ServiceHandler) invalidatePublicCard(c *gin.Context, proID uint) {
	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err == nil {
		h.cache.Delete(c.Request.Context(), cache.SalonKey(pro.Slug))
	}
}
