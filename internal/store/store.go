// Package store provides data persistence implementations.
package store

import (
	"context"

	"kvk-trader/internal/models"
)

// DataStore persists the market calendar and the trade-plan journal.
type DataStore interface {
	// Holiday calendar
	SaveHoliday(ctx context.Context, holiday models.Holiday) error
	ListHolidays(ctx context.Context) ([]models.Holiday, error)
	DeleteHoliday(ctx context.Context, date string) error

	// Trade-plan journal
	SavePlan(ctx context.Context, plan *models.TradePlan) error
	ListPlans(ctx context.Context, limit int) ([]models.TradePlan, error)

	Close() error
}
