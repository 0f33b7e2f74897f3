package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderConfirmation(t *testing.T) {
	html := renderConfirmation(Confirmation{
		ClientName:  "Marie Dupont",
		SalonName:   "Salon Belle Vue",
		Date:        "2025-10-23",
		Time:        "09:30",
		ServiceName: "Coupe femme",
		DurationMin: 45,
		Price:       38,
		Reference:   "ref-123",
	})

	assert.Contains(t, html, "Marie Dupont")
	assert.Contains(t, html, "Salon Belle Vue")
	assert.Contains(t, html, "23/10/2025")
	assert.Contains(t, html, "09:30")
	assert.Contains(t, html, "Coupe femme (45 min - 38.00&euro;)")
	assert.Contains(t, html, "ref-123")
}

func TestFrenchDate(t *testing.T) {
	assert.Equal(t, "23/10/2025", frenchDate("2025-10-23"))
	assert.Equal(t, "01/01/2026", frenchDate("2026-01-01"))

	// data ilegível passa intacta, o e-mail ainda sai
	assert.Equal(t, "not-a-date", frenchDate("not-a-date"))
}

func TestMailerDisabledWithoutSMTP(t *testing.T) {
	var m *Mailer
	assert.False(t, m.Enabled())
}
