package dashboard

import (
	"context"

	"github.com/StudioVitaBR/studio-manager/internal/domain/store"
	"github.com/StudioVitaBR/studio-manager/internal/dto"
	"github.com/StudioVitaBR/studio-manager/internal/timezone"
)

type Stats struct {
	TotalCustomers         int64                   `json:"total_customers"`
	TotalPackages          int64                   `json:"total_packages"`
	TotalAppointments      int64                   `json:"total_appointments"`
	ActiveCustomerPackages int64                   `json:"active_customer_packages"`
	TodayAppointments      int64                   `json:"today_appointments"`
	RecentPayments         []dto.PaymentSummaryDTO `json:"recent_payments"`
}

type GetStats struct {
	repo store.DashboardRepository

	studioTimezone      string
	recentPaymentsLimit int
}

func NewGetStats(
	repo store.DashboardRepository,
	studioTimezone string,
	recentPaymentsLimit int,
) *GetStats {
	if recentPaymentsLimit <= 0 {
		recentPaymentsLimit = 5
	}
	return &GetStats{
		repo:                repo,
		studioTimezone:      studioTimezone,
		recentPaymentsLimit: recentPaymentsLimit,
	}
}

// Execute agrega todas as figuras do dashboard numa passada: um único
// snapshot do repositório e uma única leitura de relógio, então todos os
// campos da resposta descrevem o mesmo instante.
func (uc *GetStats) Execute(ctx context.Context) (*Stats, error) {
	today := timezone.Today(uc.studioTimezone)

	stats := &Stats{}

	err := uc.repo.InSnapshot(ctx, func(repo store.DashboardRepository) error {
		var err error
		if stats.TotalCustomers, err = repo.CountCustomers(ctx); err != nil {
			return err
		}

		if stats.TotalPackages, err = repo.CountPackages(ctx); err != nil {
			return err
		}

		if stats.TotalAppointments, err = repo.CountAppointments(ctx); err != nil {
			return err
		}

		if stats.ActiveCustomerPackages, err = repo.CountActiveCustomerPackages(ctx); err != nil {
			return err
		}

		if stats.TodayAppointments, err = repo.CountAppointmentsOnDate(ctx, today); err != nil {
			return err
		}

		payments, err := repo.ListRecentPayments(ctx, uc.recentPaymentsLimit)
		if err != nil {
			return err
		}

		stats.RecentPayments = make([]dto.PaymentSummaryDTO, 0, len(payments))
		for _, p := range payments {
			stats.RecentPayments = append(stats.RecentPayments, dto.PaymentSummaryDTO{
				ID:            p.ID,
				Amount:        p.Amount,
				PaymentMethod: p.PaymentMethod,
				PaymentDate:   p.PaymentDate,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
