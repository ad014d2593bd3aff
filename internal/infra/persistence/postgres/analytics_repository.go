package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository interface.
// Waste analytics are written by the external impact pipeline, so only reads
// are implemented here.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// FindAll retrieves every waste analytic row, oldest first, so aggregations
// see rows in chronological order.
func (repo *analyticsRepository) FindAll(ctx context.Context) ([]*entity.WasteAnalytic, error) {
	var analyticModels []*model.WasteAnalyticModel

	if err := repo.db.WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&analyticModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find waste analytics")
	}

	analytics := make([]*entity.WasteAnalytic, 0, len(analyticModels))
	for _, analyticM := range analyticModels {
		analytics = append(analytics, toAnalyticDomain(analyticM))
	}

	return analytics, nil
}

// toAnalyticDomain converts a GORM WasteAnalyticModel to a domain WasteAnalytic entity.
func toAnalyticDomain(data *model.WasteAnalyticModel) *entity.WasteAnalytic {
	if data == nil {
		return nil
	}

	return &entity.WasteAnalytic{
		ID:            data.ID,
		ListingID:     data.ListingID,
		DonationID:    data.DonationID,
		FoodSavedKg:   data.FoodSavedKg,
		MealsProvided: data.MealsProvided,
		CO2SavedKg:    data.CO2SavedKg,
		Category:      data.Category,
		Date:          data.Date,
		CreatedAt:     data.CreatedAt,
	}
}
