package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/cache"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/httpresp"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
	"github.com/beautylink/salon-scheduler/internal/photo"
	"github.com/beautylink/salon-scheduler/internal/storage"
)

type EmployeeHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	photos *storage.PhotoStore
}

func NewEmployeeHandler(db *gorm.DB, c *cache.Cache, photos *storage.PhotoStore) *EmployeeHandler {
	return &EmployeeHandler{db: db, cache: c, photos: photos}
}

type EmployeeRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (h *EmployeeHandler) List(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var employees []models.Employee
	if err := h.db.
		Where("professional_id = ? AND active = true", proID).
		Order("id ASC").
		Find(&employees).Error; err != nil {

		httperr.Internal(c, "failed_to_list_employees", "Erro ao listar funcionários.")
		return
	}

	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	emp := models.Employee{
		ProfessionalID: proID,
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          req.Email,
		Phone:          req.Phone,
		Active:         true,
	}

	if err := h.db.Create(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", "Erro ao criar funcionário.")
		return
	}

	h.invalidatePublicCard(c, proID)

	c.JSON(http.StatusCreated, emp)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)
	id := c.Param("id")

	var emp models.Employee
	if err := h.db.
		Where("id = ? AND professional_id = ?", id, proID).
		First(&emp).Error; err != nil {

		httperr.NotFound(c, "employee_not_found", "Funcionário não encontrado.")
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	emp.Name = req.Name
	emp.Specialty = req.Specialty
	emp.Email = req.Email
	emp.Phone = req.Phone

	if err := h.db.Save(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", "Erro ao salvar funcionário.")
		return
	}

	h.invalidatePublicCard(c, proID)

	c.JSON(http.StatusOK, emp)
}

// Delete é sempre lógico: active=false preserva a referência dos
// agendamentos históricos.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)
	id := c.Param("id")

	res := h.db.
		Model(&models.Employee{}).
		Where("id = ? AND professional_id = ?", id, proID).
		Update("active", false)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_employee", "Erro ao remover funcionário.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "Funcionário não encontrado.")
		return
	}

	h.invalidatePublicCard(c, proID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------------------------------------------------
// Foto (multipart → recorte/WebP → S3)
// --------------------------------------------------

func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)
	id := c.Param("id")

	if !h.photos.Enabled() {
		httperr.Internal(c, "photo_storage_disabled", "Armazenamento de fotos não configurado.")
		return
	}

	var emp models.Employee
	if err := h.db.
		Where("id = ? AND professional_id = ?", id, proID).
		First(&emp).Error; err != nil {

		httperr.NotFound(c, "employee_not_found", "Funcionário não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Foto obrigatória.")
		return
	}

	if fileHeader.Size > photo.MaxUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto acima de 2MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, photo.MaxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto.")
		return
	}

	processed, err := photo.Process(fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		if httperr.IsBusiness(err, "unsupported_photo_format") {
			httperr.BadRequest(c, "unsupported_photo_format", "Apenas JPG, PNG ou WebP.")
			return
		}
		if httperr.IsBusiness(err, "photo_too_large") {
			httperr.BadRequest(c, "photo_too_large", "Foto acima de 2MB.")
			return
		}
		httperr.BadRequest(c, "invalid_photo", "Imagem inválida.")
		return
	}

	key := fmt.Sprintf("employees/%d/%s.webp", emp.ID, uuid.NewString())

	url, err := h.photos.Upload(c.Request.Context(), key, "image/webp", processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	emp.PhotoURL = url
	if err := h.db.Save(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", "Erro ao salvar funcionário.")
		return
	}

	h.invalidatePublicCard(c, proID)

	c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) invalidatePublicCard(c *gin.Context, proID uint) {
	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err == nil {
		h.cache.Delete(c.Request.Context(), cache.SalonKey(pro.Slug))
	}
}
