package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

// AnalyticsRepository exposes read access to externally produced impact rows.
// The application never writes waste analytics; the impact pipeline owns them.
type AnalyticsRepository interface {
	// FindAll retrieves every waste analytic row, oldest first.
	FindAll(ctx context.Context) ([]*entity.WasteAnalytic, error)
}
