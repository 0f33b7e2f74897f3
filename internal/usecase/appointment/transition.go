package appointment

import (
	"context"

	"github.com/beautylink/salon-scheduler/internal/audit"
	domain "github.com/beautylink/salon-scheduler/internal/domain/appointment"
	"github.com/beautylink/salon-scheduler/internal/models"
	"github.com/beautylink/salon-scheduler/internal/timezone"
)

// ======================================================
// Transições de status (complete / cancel / no-show)
// ======================================================

type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{repo: repo, audit: auditDisp}
}

func (uc *TransitionAppointment) Complete(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.transition(ctx, professionalID, appointmentID, "appointment_completed",
		func(ap *models.Appointment, pro *models.Professional) error {
			return domain.Complete(ap, timezone.NowIn(pro.Timezone))
		})
}

func (uc *TransitionAppointment) Cancel(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.transition(ctx, professionalID, appointmentID, "appointment_cancelled",
		func(ap *models.Appointment, pro *models.Professional) error {
			return domain.Cancel(ap, timezone.NowIn(pro.Timezone))
		})
}

func (uc *TransitionAppointment) MarkNoShow(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.transition(ctx, professionalID, appointmentID, "appointment_no_show",
		func(ap *models.Appointment, _ *models.Professional) error {
			return domain.MarkNoShow(ap)
		})
}

func (uc *TransitionAppointment) transition(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
	action string,
	apply func(*models.Appointment, *models.Professional) error,
) (*models.Appointment, error) {

	pro, err := uc.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForProfessional(ctx, appointmentID, professionalID)
	if err != nil {
		return nil, err
	}

	if err := apply(ap, pro); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         action,
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
