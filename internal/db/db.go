package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/config"
	"github.com/beautylink/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Professional{},
		&models.Service{},
		&models.Employee{},
		&models.AvailabilityRule{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice único parcial: no máximo um agendamento confirmado por
	// (salão, funcionário-ou-nulo, data, hora). É esta a garantia real
	// contra double-booking sob concorrência — a re-checagem da aplicação
	// só fecha a janela da corrida, quem arbitra é o banco.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_confirmed_slot
        ON appointments (professional_id, COALESCE(employee_id, 0), date, time)
        WHERE status = 'confirmed'
    `)

	// No máximo uma regra efetiva por (dono, dia). Regras duplicadas
	// legadas resolvem por última-vence na leitura; novas gravações
	// substituem a semana inteira numa transação.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_availability_owner_weekday
        ON availability_rules (professional_id, COALESCE(employee_id, 0), weekday)
    `)

	db.Exec(`
        UPDATE professionals
        SET timezone = 'Europe/Paris'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
