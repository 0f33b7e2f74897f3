package mailer

import "log"

// Dispatcher envia confirmações em segundo plano. Falha de e-mail nunca
// desfaz nem bloqueia o agendamento já criado: loga e segue.
type Dispatcher struct {
	mailer *Mailer
	queue  chan Confirmation
}

func NewDispatcher(mailer *Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Confirmation, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for c := range d.queue {
		if !d.mailer.Enabled() {
			continue
		}
		if err := d.mailer.SendConfirmation(c); err != nil {
			log.Println("confirmation email error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(c Confirmation) {
	select {
	case d.queue <- c:
		// enfileirado
	default:
		log.Println("mail queue full, dropping confirmation email")
	}
}
