package appointment

import (
	"context"
	"time"

	domain "github.com/beautylink/salon-scheduler/internal/domain/appointment"
	"github.com/beautylink/salon-scheduler/internal/domain/schedule"
	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/models"

	"gorm.io/gorm"
)

// ======================================================
// GET AVAILABILITY
// ======================================================

type GetAvailability struct {
	repo     domain.Repository
	stepping schedule.SteppingMode
}

func NewGetAvailability(repo domain.Repository, stepping schedule.SteppingMode) *GetAvailability {
	return &GetAvailability{repo: repo, stepping: stepping}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	times, err := availableTimes(
		ctx,
		uc.repo,
		in.ProfessionalID,
		in.EmployeeID,
		svc,
		in.Date,
		uc.stepping,
	)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(times))
	for _, t := range times {
		slots = append(slots, domain.TimeSlot{
			Start: t.String(),
			End:   t.Add(svc.DurationMin).String(),
		})
	}

	return slots, nil
}

// availableTimes: regra do dia → geração de slots → menos os já
// ocupados (bloqueio por início exato). Compartilhado entre a consulta
// pública e a criação do agendamento.
func availableTimes(
	ctx context.Context,
	repo domain.Repository,
	professionalID uint,
	employeeID *uint,
	svc *models.Service,
	date time.Time,
	stepping schedule.SteppingMode,
) ([]schedule.TimeOfDay, error) {

	weekday := int(schedule.FromTime(date))

	rule, err := repo.GetAvailabilityRule(ctx, professionalID, employeeID, weekday)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// dia sem regra = fechado, não é erro
			return nil, nil
		}
		return nil, err
	}

	if !rule.Working {
		return nil, nil
	}

	start, err := schedule.ParseTimeOfDay(rule.StartTime)
	if err != nil {
		return nil, nil
	}

	end, err := schedule.ParseTimeOfDay(rule.EndTime)
	if err != nil {
		return nil, nil
	}

	slots := schedule.Slots(
		schedule.Window{Start: start, End: end},
		svc.DurationMin,
		stepping,
	)

	if len(slots) == 0 {
		return nil, nil
	}

	bookedRaw, err := repo.ListBookedTimes(
		ctx,
		professionalID,
		employeeID,
		date.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.TimeOfDay, 0, len(bookedRaw))
	for _, b := range bookedRaw {
		if t, err := schedule.ParseTimeOfDay(b); err == nil {
			booked = append(booked, t)
		}
	}

	return schedule.FilterBooked(slots, booked), nil
}
