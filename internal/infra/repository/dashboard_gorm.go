package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/StudioVitaBR/studio-manager/internal/domain/store"
	"github.com/StudioVitaBR/studio-manager/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

// InSnapshot roda fn dentro de uma transação; o repositório passado a fn
// enxerga o snapshot da transação, nunca commits posteriores.
func (r *DashboardGormRepository) InSnapshot(
	ctx context.Context,
	fn func(store.DashboardRepository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DashboardGormRepository{db: tx})
	})
}

func (r *DashboardGormRepository) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Customer{})
}

func (r *DashboardGormRepository) CountPackages(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Package{})
}

func (r *DashboardGormRepository) CountAppointments(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Appointment{})
}

func (r *DashboardGormRepository) CountAppointmentsOnDate(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ?", date).
		Count(&count).Error

	return count, err
}

func (r *DashboardGormRepository) CountActiveCustomerPackages(
	ctx context.Context,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CustomerPackage{}).
		Where("status = ?", models.CustomerPackageStatusActive).
		Count(&count).Error

	return count, err
}

func (r *DashboardGormRepository) ListRecentPayments(
	ctx context.Context,
	limit int,
) ([]models.Payment, error) {

	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Order("payment_date DESC, created_at DESC").
		Limit(limit).
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *DashboardGormRepository) count(ctx context.Context, model any) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Count(&count).Error
	return count, err
}

// Compile-time check
var _ store.DashboardRepository = (*DashboardGormRepository)(nil)
