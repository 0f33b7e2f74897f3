package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/beautylink/salon-scheduler/internal/audit"
	domain "github.com/beautylink/salon-scheduler/internal/domain/appointment"
	"github.com/beautylink/salon-scheduler/internal/domain/booking"
	"github.com/beautylink/salon-scheduler/internal/domain/schedule"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/mailer"
	"github.com/beautylink/salon-scheduler/internal/models"
	"github.com/beautylink/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ProfessionalID uint

	ServiceID uint

	// EmployeeID nulo = escolha explícita de "sem preferência".
	EmployeeID *uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking percorre o wizard do fluxo público passo a passo:
// serviço → funcionário → data/hora (validada contra os slots ofertados)
// → contato → persistência → confirmado. O e-mail de confirmação é
// melhor-esforço: nunca desfaz o agendamento já criado.
type CreateBooking struct {
	repo     domain.Repository
	stepping schedule.SteppingMode
	mail     *mailer.Dispatcher
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	stepping schedule.SteppingMode,
	mail *mailer.Dispatcher,
	auditDisp *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		stepping: stepping,
		mail:     mail,
		audit:    auditDisp,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	pro, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. Serviço
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	wiz, err := booking.New().SelectService(svc.ID, svc.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Funcionário (ou "sem preferência")
	// --------------------------------------------------
	if in.EmployeeID != nil {
		if _, err := uc.repo.GetEmployee(ctx, in.ProfessionalID, *in.EmployeeID); err != nil {
			return nil, httperr.ErrBusiness("employee_not_found")
		}
	}

	wiz, err = wiz.SelectEmployee(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Data / hora no timezone do salão
	// --------------------------------------------------
	loc := timezone.Location(pro.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	today := timezone.NowIn(pro.Timezone)
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	if date.Before(todayMidnight) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	slotTime, err := schedule.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	offered, err := availableTimes(
		ctx,
		uc.repo,
		in.ProfessionalID,
		in.EmployeeID,
		svc,
		date,
		uc.stepping,
	)
	if err != nil {
		return nil, err
	}

	wiz, err = wiz.SelectSlot(in.Date, slotTime, offered)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Contato
	// --------------------------------------------------
	wiz, err = wiz.EnterContact(booking.Contact{
		Name:  in.ClientName,
		Email: in.ClientEmail,
		Phone: in.ClientPhone,
		Notes: in.Notes,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Re-checagem da tupla exata antes do insert.
	// Entre a checagem e o insert ainda cabe uma corrida; o índice
	// único parcial do banco decide o vencedor.
	// --------------------------------------------------
	taken, err := uc.repo.IsSlotTaken(
		ctx,
		in.ProfessionalID,
		in.EmployeeID,
		in.Date,
		slotTime.String(),
	)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 6. Criação com snapshots de duração e preço
	// --------------------------------------------------
	serviceID := svc.ID
	ap := &models.Appointment{
		Reference:      uuid.NewString(),
		ProfessionalID: in.ProfessionalID,
		ServiceID:      &serviceID,
		EmployeeID:     in.EmployeeID,
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		ClientPhone:    in.ClientPhone,
		Date:           in.Date,
		Time:           slotTime.String(),
		DurationMin:    svc.DurationMin,
		Price:          svc.Price,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	if _, err := wiz.Confirm(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Confirmação por e-mail (melhor esforço, assíncrono)
	// --------------------------------------------------
	uc.mail.Dispatch(mailer.Confirmation{
		ClientName:  ap.ClientName,
		ClientEmail: ap.ClientEmail,
		SalonName:   pro.SalonName,
		Date:        ap.Date,
		Time:        ap.Time,
		ServiceName: svc.Name,
		DurationMin: ap.DurationMin,
		Price:       ap.Price,
		Reference:   ap.Reference,
	})

	// --------------------------------------------------
	// 8. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
