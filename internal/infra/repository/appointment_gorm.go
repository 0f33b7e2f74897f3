package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/beautylink/salon-scheduler/internal/domain/appointment"
	"github.com/beautylink/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *AppointmentGormRepository) GetProfessionalBySlug(
	ctx context.Context,
	slug string,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", serviceID, professionalID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	professionalID uint,
	employeeID uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ? AND active = true", employeeID, professionalID).
		First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// GetAvailabilityRule: regra do funcionário tem precedência sobre a do
// salão; entre duplicatas do mesmo dono vence a gravada por último.
func (r *AppointmentGormRepository) GetAvailabilityRule(
	ctx context.Context,
	professionalID uint,
	employeeID *uint,
	weekday int,
) (*models.AvailabilityRule, error) {

	if employeeID != nil {
		var rule models.AvailabilityRule
		err := r.db.WithContext(ctx).
			Where(
				"professional_id = ? AND employee_id = ? AND weekday = ?",
				professionalID, *employeeID, weekday,
			).
			Order("id DESC").
			First(&rule).Error

		if err == nil {
			return &rule, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	var rule models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND employee_id IS NULL AND weekday = ?",
			professionalID, weekday,
		).
		Order("id DESC").
		First(&rule).Error; err != nil {
		return nil, err
	}

	return &rule, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	professionalID uint,
	employeeID *uint,
	date string,
) ([]string, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"professional_id = ? AND date = ? AND status = ?",
			professionalID, date, "confirmed",
		)

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	} else {
		q = q.Where("employee_id IS NULL")
	}

	var times []string
	if err := q.Order("time ASC").Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) IsSlotTaken(
	ctx context.Context,
	professionalID uint,
	employeeID *uint,
	date string,
	timeOfDay string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"professional_id = ? AND date = ? AND time = ? AND status = ?",
			professionalID, date, timeOfDay, "confirmed",
		)

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	} else {
		q = q.Where("employee_id IS NULL")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForProfessional(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
