package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/cache"
	domain "github.com/beautylink/salon-scheduler/internal/domain/appointment"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/models"
	ucAppointment "github.com/beautylink/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	cache        *cache.Cache
	availability *ucAppointment.GetAvailability
	createBook   *ucAppointment.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	c *cache.Cache,
	availability *ucAppointment.GetAvailability,
	createBook *ucAppointment.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		cache:        c,
		availability: availability,
		createBook:   createBook,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type SalonCard struct {
	ID        uint   `json:"id"`
	SalonName string `json:"salon_name"`
	Slug      string `json:"slug"`
	Phone     string `json:"phone"`
	City      string `json:"city"`

	Services  []models.Service  `json:"services"`
	Employees []models.Employee `json:"employees"`
}

type PublicCreateAppointmentRequest struct {
	ServiceID  uint  `json:"service_id" binding:"required"`
	EmployeeID *uint `json:"employee_id"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM

	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// SALON CARD (cacheado por slug)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetSalon(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	var card SalonCard
	if h.cache.GetJSON(ctx, cache.SalonKey(slug), &card) {
		c.JSON(http.StatusOK, card)
		return
	}

	var pro models.Professional
	if err := h.db.Where("slug = ?", slug).First(&pro).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("professional_id = ? AND active = true", pro.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	var employees []models.Employee
	if err := h.db.
		Where("professional_id = ? AND active = true", pro.ID).
		Order("id ASC").
		Find(&employees).Error; err != nil {

		httperr.Internal(c, "failed_to_list_employees", "Erro ao listar funcionários.")
		return
	}

	card = SalonCard{
		ID:        pro.ID,
		SalonName: pro.SalonName,
		Slug:      pro.Slug,
		Phone:     pro.Phone,
		City:      pro.City,
		Services:  services,
		Employees: employees,
	}

	// Lista de slots nunca entra aqui: cartão é quase estático, slots
	// mudam a cada agendamento.
	h.cache.SetJSON(ctx, cache.SalonKey(slug), card, 60*time.Second)

	c.JSON(http.StatusOK, card)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var employeeID *uint
	if empStr := c.Query("employee_id"); empStr != "" {
		empID, err := strconv.ParseUint(empStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee_id", "Funcionário inválido.")
			return
		}
		id := uint(empID)
		employeeID = &id
	}

	var pro models.Professional
	if err := h.db.Where("slug = ?", slug).First(&pro).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := parseDateForPro(&pro, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ProfessionalID: pro.ID,
			EmployeeID:     employeeID,
			ServiceID:      uint(serviceID),
			Date:           date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	slug := c.Param("slug")

	var pro models.Professional
	if err := h.db.Where("slug = ?", slug).First(&pro).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createBook.Execute(
		c.Request.Context(),
		ucAppointment.CreateBookingInput{
			ProfessionalID: pro.ID,
			ServiceID:      req.ServiceID,
			EmployeeID:     req.EmployeeID,
			Date:           req.Date,
			Time:           req.Time,
			ClientName:     req.ClientName,
			ClientEmail:    req.ClientEmail,
			ClientPhone:    req.ClientPhone,
			Notes:          req.Notes,
		},
	)

	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func mapCreateBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
	case httperr.IsBusiness(err, "employee_not_found"):
		httperr.BadRequest(c, "employee_not_found", "Funcionário inválido.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "date_in_past"):
		httperr.BadRequest(c, "date_in_past", "A data já passou.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Horário inválido.")
	case httperr.IsBusiness(err, "slot_not_available"):
		httperr.BadRequest(c, "slot_not_available", "Horário fora da lista ofertada.")
	case httperr.IsBusiness(err, "client_name_required"):
		httperr.BadRequest(c, "client_name_required", "Nome obrigatório.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
	case httperr.IsBusiness(err, "slot_taken"):
		// perdedor da corrida: precisa escolher outro horário
		httperr.Conflict(c, "slot_taken", "Este horário acabou de ser reservado.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}
