package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// ShareHandler expõe o link público de agendamento do salão e o
// QR code correspondente, para impressão no balcão.
type ShareHandler struct {
	db            *gorm.DB
	publicBaseURL string
}

func NewShareHandler(db *gorm.DB, publicBaseURL string) *ShareHandler {
	return &ShareHandler{db: db, publicBaseURL: publicBaseURL}
}

func (h *ShareHandler) bookingURL(pro *models.Professional) string {
	return h.publicBaseURL + "/book/" + pro.Slug
}

////////////////////////////////////////////////////////
// LINK
////////////////////////////////////////////////////////

func (h *ShareHandler) Link(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug": pro.Slug,
		"url":  h.bookingURL(&pro),
	})
}

////////////////////////////////////////////////////////
// QR CODE
////////////////////////////////////////////////////////

func (h *ShareHandler) QRCode(c *gin.Context) {
	proID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, proID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	png, err := qrcode.Encode(h.bookingURL(&pro), qrcode.Medium, 256)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_qrcode", "Erro ao gerar QR code.")
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}
