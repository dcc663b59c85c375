package store

import (
	"context"

	"github.com/StudioVitaBR/studio-manager/internal/models"
)

// Portas de leitura/escrita consumidas pelos usecases. As implementações
// gorm vivem em internal/infra/repository.

type AppointmentRepository interface {
	Create(ctx context.Context, ap *models.Appointment) error

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error

	// List devolve todos os agendamentos; date != "" filtra pelo dia.
	List(ctx context.Context, date string) ([]models.Appointment, error)

	// CustomerNames/PackageNames resolvem referências fracas em lote.
	// Ids apagados simplesmente não aparecem no mapa.
	CustomerNames(ctx context.Context, ids []string) (map[string]string, error)

	PackageNames(ctx context.Context, ids []string) (map[string]string, error)
}

type DashboardRepository interface {
	// InSnapshot executa fn contra uma visão transacional do repositório:
	// todas as leituras feitas dentro de fn saem do mesmo snapshot lógico.
	InSnapshot(ctx context.Context, fn func(DashboardRepository) error) error

	CountCustomers(ctx context.Context) (int64, error)

	CountPackages(ctx context.Context) (int64, error)

	CountAppointments(ctx context.Context) (int64, error)

	CountAppointmentsOnDate(ctx context.Context, date string) (int64, error)

	CountActiveCustomerPackages(ctx context.Context) (int64, error)

	ListRecentPayments(ctx context.Context, limit int) ([]models.Payment, error)
}
