package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/beautylink/salon-scheduler/internal/config"
)

// Confirmation carrega só os campos de snapshot do agendamento — o
// template nunca lê o Service de volta do banco.
type Confirmation struct {
	ClientName  string
	ClientEmail string
	SalonName   string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	ServiceName string
	DurationMin int
	Price       float64
	Reference   string
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.dialer != nil
}

func (m *Mailer) SendConfirmation(c Confirmation) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", c.ClientEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Confirmation de rendez-vous — %s", c.SalonName))
	msg.SetBody("text/html", renderConfirmation(c))

	return m.dialer.DialAndSend(msg)
}

func renderConfirmation(c Confirmation) string {
	return fmt.Sprintf(`
<h2>Rendez-vous confirmé</h2>
<p>Bonjour %s,</p>
<p>Votre rendez-vous chez <strong>%s</strong> est confirmé :</p>
<ul>
  <li>Date : %s</li>
  <li>Heure : %s</li>
  <li>Prestation : %s (%d min - %.2f&euro;)</li>
</ul>
<p>Référence : %s</p>
`,
		c.ClientName,
		c.SalonName,
		frenchDate(c.Date),
		c.Time,
		c.ServiceName,
		c.DurationMin,
		c.Price,
		c.Reference,
	)
}

// frenchDate: "2025-10-23" → "23/10/2025" (formato do e-mail original).
func frenchDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
