package appointment

import (
	"context"

	"github.com/beautylink/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalBySlug(
		ctx context.Context,
		slug string,
	) (*models.Professional, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Employee --------
	GetEmployee(
		ctx context.Context,
		professionalID uint,
		employeeID uint,
	) (*models.Employee, error)

	// -------- Availability --------

	// GetAvailabilityRule resolve a regra do dia: primeiro a do
	// funcionário, senão a do salão. Duplicatas no mesmo dia resolvem
	// por última-vence.
	GetAvailabilityRule(
		ctx context.Context,
		professionalID uint,
		employeeID *uint,
		weekday int,
	) (*models.AvailabilityRule, error)

	// ListBookedTimes devolve os horários de início (HH:MM) já ocupados
	// por agendamentos confirmados do funcionário/data.
	ListBookedTimes(
		ctx context.Context,
		professionalID uint,
		employeeID *uint,
		date string,
	) ([]string, error)

	// -------- Appointment (create / conflict) --------

	// IsSlotTaken re-verifica a tupla exata (funcionário, data, hora)
	// imediatamente antes da criação.
	IsSlotTaken(
		ctx context.Context,
		professionalID uint,
		employeeID *uint,
		date string,
		timeOfDay string,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForProfessional(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
