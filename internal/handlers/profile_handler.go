package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/cache"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
	"github.com/beautylink/salon-scheduler/internal/timezone"
)

type ProfileHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewProfileHandler(db *gorm.DB, c *cache.Cache) *ProfileHandler {
	return &ProfileHandler{db: db, cache: c}
}

type ProfileUpdateRequest struct {
	Name      *string `json:"name"`
	SalonName *string `json:"salon_name"`
	Phone     *string `json:"phone"`
	City      *string `json:"city"`
	Timezone  *string `json:"timezone"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	c.JSON(http.StatusOK, pro)
}

// Update: o slug nunca muda aqui — renomear o salão não pode quebrar
// links e QR codes já distribuídos.
func (h *ProfileHandler) Update(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		pro.Name = *req.Name
	}
	if req.SalonName != nil {
		pro.SalonName = *req.SalonName
	}
	if req.Phone != nil {
		pro.Phone = *req.Phone
	}
	if req.City != nil {
		pro.City = *req.City
	}
	if req.Timezone != nil && timezone.IsValid(*req.Timezone) {
		pro.Timezone = *req.Timezone
	}

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao salvar perfil.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.SalonKey(pro.Slug))

	c.JSON(http.StatusOK, pro)
}
