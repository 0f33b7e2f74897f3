package booking

import (
	"github.com/beautylink/salon-scheduler/internal/domain/schedule"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/validators"
)

// ======================================================
// Fluxo público de agendamento (wizard)
// ======================================================

// State é o estado do wizard. O fluxo avança sempre nessa ordem e pode
// voltar de qualquer estado, exceto depois de confirmado.
type State string

const (
	StateSelectingService    State = "selecting_service"
	StateSelectingEmployee   State = "selecting_employee"
	StateSelectingDateTime   State = "selecting_datetime"
	StateEnteringContactInfo State = "entering_contact_info"
	StateConfirmed           State = "confirmed"
)

// EmployeeChoice distingue "ainda não escolhido" de "sem preferência".
type EmployeeChoice int

const (
	EmployeeUnset EmployeeChoice = iota
	EmployeeNoPreference
	EmployeeSpecific
)

type Contact struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// Wizard é um valor imutável: cada transição devolve uma cópia nova.
// Nenhum slot fica reservado enquanto o cliente preenche os dados — um
// cliente concorrente pode consumir o horário primeiro; a checagem final
// na submissão resolve.
type Wizard struct {
	State State

	ServiceID   uint
	DurationMin int

	Employee   EmployeeChoice
	EmployeeID *uint

	Date string
	Time schedule.TimeOfDay

	Contact Contact
}

func New() Wizard {
	return Wizard{State: StateSelectingService}
}

func (w Wizard) SelectService(serviceID uint, durationMin int) (Wizard, error) {
	if w.State != StateSelectingService {
		return w, httperr.ErrBusiness("invalid_step")
	}
	if serviceID == 0 || durationMin <= 0 {
		return w, httperr.ErrBusiness("service_required")
	}

	w.ServiceID = serviceID
	w.DurationMin = durationMin
	w.State = StateSelectingEmployee
	return w, nil
}

// SelectEmployee com id nil registra explicitamente "sem preferência".
func (w Wizard) SelectEmployee(employeeID *uint) (Wizard, error) {
	if w.State != StateSelectingEmployee {
		return w, httperr.ErrBusiness("invalid_step")
	}

	if employeeID == nil {
		w.Employee = EmployeeNoPreference
		w.EmployeeID = nil
	} else {
		w.Employee = EmployeeSpecific
		id := *employeeID
		w.EmployeeID = &id
	}

	w.State = StateSelectingDateTime
	return w, nil
}

// SelectSlot exige que o horário venha da lista atualmente ofertada
// (geração menos bloqueados) para a data escolhida.
func (w Wizard) SelectSlot(date string, t schedule.TimeOfDay, offered []schedule.TimeOfDay) (Wizard, error) {
	if w.State != StateSelectingDateTime {
		return w, httperr.ErrBusiness("invalid_step")
	}
	if date == "" {
		return w, httperr.ErrBusiness("date_required")
	}

	found := false
	for _, s := range offered {
		if s == t {
			found = true
			break
		}
	}
	if !found {
		return w, httperr.ErrBusiness("slot_not_available")
	}

	w.Date = date
	w.Time = t
	w.State = StateEnteringContactInfo
	return w, nil
}

func (w Wizard) EnterContact(c Contact) (Wizard, error) {
	if w.State != StateEnteringContactInfo {
		return w, httperr.ErrBusiness("invalid_step")
	}
	if c.Name == "" {
		return w, httperr.ErrBusiness("client_name_required")
	}
	if !validators.IsEmailPlausible(c.Email) {
		return w, httperr.ErrBusiness("invalid_email")
	}

	w.Contact = c
	return w, nil
}

// Confirm é chamado pelo caso de uso depois que o agendamento foi
// persistido com sucesso. Estado terminal.
func (w Wizard) Confirm() (Wizard, error) {
	if w.State != StateEnteringContactInfo {
		return w, httperr.ErrBusiness("invalid_step")
	}
	w.State = StateConfirmed
	return w, nil
}

func (w Wizard) Back() (Wizard, error) {
	switch w.State {
	case StateSelectingEmployee:
		w.State = StateSelectingService
	case StateSelectingDateTime:
		w.State = StateSelectingEmployee
	case StateEnteringContactInfo:
		w.State = StateSelectingDateTime
	default:
		return w, httperr.ErrBusiness("cannot_go_back")
	}
	return w, nil
}
