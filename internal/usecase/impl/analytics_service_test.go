package impl

import (
	"context"
	"testing"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/entity"
	mockRepo "foodbridge/internal/mocks/repository"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	analyticsRepo *mockRepo.MockAnalyticsRepository
	donationRepo  *mockRepo.MockDonationRepository
	profileRepo   *mockRepo.MockProfileRepository
	listingRepo   *mockRepo.MockListingRepository
}

func createTestAnalyticsService(t *testing.T, cfg *config.Config) analyticsServiceFixtures {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	donationRepo := mockRepo.NewMockDonationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	listingRepo := mockRepo.NewMockListingRepository(t)

	service := NewAnalyticsService(AnalyticsServiceParams{
		AnalyticsRepo: analyticsRepo,
		DonationRepo:  donationRepo,
		ProfileRepo:   profileRepo,
		ListingRepo:   listingRepo,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return analyticsServiceFixtures{
		service:       service,
		analyticsRepo: analyticsRepo,
		donationRepo:  donationRepo,
		profileRepo:   profileRepo,
		listingRepo:   listingRepo,
	}
}

func TestAnalyticsService_GetOverview_Rounding(t *testing.T) {
	fx := createTestAnalyticsService(t, nil)

	ctx := context.Background()
	donations := []*entity.Donation{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}
	donors := []*entity.Profile{{ID: uuid.New(), Role: entity.RoleDonor}}
	recipients := []*entity.Profile{
		{ID: uuid.New(), Role: entity.RoleRecipient},
		{ID: uuid.New(), Role: entity.RoleRecipient},
	}
	rows := []*entity.WasteAnalytic{
		{FoodSavedKg: 6.2, MealsProvided: 12, CO2SavedKg: 1.84},
		{FoodSavedKg: 4.2, MealsProvided: 8, CO2SavedKg: 1.3},
	}

	donorRole := entity.RoleDonor
	recipientRole := entity.RoleRecipient

	fx.donationRepo.EXPECT().FindAll(ctx).Return(donations, nil)
	fx.profileRepo.EXPECT().FindAll(ctx, &donorRole).Return(donors, nil)
	fx.profileRepo.EXPECT().FindAll(ctx, &recipientRole).Return(recipients, nil)
	fx.analyticsRepo.EXPECT().FindAll(ctx).Return(rows, nil)

	overview, err := fx.service.GetOverview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalDonations)
	assert.Equal(t, 1, overview.ActiveDonors)
	assert.Equal(t, 2, overview.ActiveRecipients)
	// 6.2 + 4.2 = 10.4 rounds to 10.
	assert.Equal(t, 10, overview.FoodSavedKg)
	assert.Equal(t, 20, overview.MealsProvided)
	// 1.84 + 1.3 = 3.14 rounds to one decimal.
	assert.InDelta(t, 3.1, overview.CO2SavedKg, 0.001)
}

func TestAnalyticsService_GetImpactMetrics_WaterFromUnroundedFood(t *testing.T) {
	fx := createTestAnalyticsService(t, nil)

	ctx := context.Background()
	rows := []*entity.WasteAnalytic{
		{FoodSavedKg: 5.3, MealsProvided: 10},
		{FoodSavedKg: 5.3, MealsProvided: 11},
	}

	fx.analyticsRepo.EXPECT().FindAll(ctx).Return(rows, nil)

	metrics, err := fx.service.GetImpactMetrics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 21, metrics.MealsProvided)
	// 10.6 kg rounds to 11 for display.
	assert.Equal(t, 11, metrics.FoodSavedKg)
	// Water derives from the unrounded 10.6 kg: 10.6 * 2.5 = 26.5 -> 27,
	// not from the rounded 11 kg (which would give 28).
	assert.Equal(t, 27, metrics.WaterSavedLitres)
}

func TestAnalyticsService_GetImpactMetrics_ConfiguredMultiplier(t *testing.T) {
	cfg := &config.Config{
		Impact: &config.ImpactConfig{WaterLitresPerKg: 4},
	}
	fx := createTestAnalyticsService(t, cfg)

	ctx := context.Background()
	rows := []*entity.WasteAnalytic{
		{FoodSavedKg: 10, MealsProvided: 20},
	}

	fx.analyticsRepo.EXPECT().FindAll(ctx).Return(rows, nil)

	metrics, err := fx.service.GetImpactMetrics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 40, metrics.WaterSavedLitres)
}

func TestAnalyticsService_GetImpactMetrics_RepeatedCallsMatch(t *testing.T) {
	fx := createTestAnalyticsService(t, nil)

	ctx := context.Background()
	rows := []*entity.WasteAnalytic{
		{FoodSavedKg: 7.7, MealsProvided: 15},
	}

	fx.analyticsRepo.EXPECT().FindAll(ctx).Return(rows, nil)

	first, err := fx.service.GetImpactMetrics(ctx)
	require.NoError(t, err)

	second, err := fx.service.GetImpactMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyticsService_GetCategoryBreakdown_SortOrder(t *testing.T) {
	fx := createTestAnalyticsService(t, nil)

	ctx := context.Background()
	listings := []*entity.FoodListing{
		{ID: uuid.New(), Category: "produce"},
		{ID: uuid.New(), Category: "bakery"},
		{ID: uuid.New(), Category: "produce"},
		{ID: uuid.New(), Category: "dairy"},
		{ID: uuid.New(), Category: "bakery"},
	}

	fx.listingRepo.EXPECT().FindAll(ctx).Return(listings, nil)

	breakdown, err := fx.service.GetCategoryBreakdown(ctx)

	require.NoError(t, err)
	require.Len(t, breakdown, 3)
	// Count descending, ties broken alphabetically.
	assert.Equal(t, usecase.CategoryCount{Category: "bakery", Count: 2}, breakdown[0])
	assert.Equal(t, usecase.CategoryCount{Category: "produce", Count: 2}, breakdown[1])
	assert.Equal(t, usecase.CategoryCount{Category: "dairy", Count: 1}, breakdown[2])
}

func TestAnalyticsService_GetMonthlyTrends_KeepsRecentMonths(t *testing.T) {
	fx := createTestAnalyticsService(t, nil)

	ctx := context.Background()
	listings := make([]*entity.FoodListing, 0, 9)
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	for month := 0; month < 8; month++ {
		listings = append(listings, &entity.FoodListing{
			ID:        uuid.New(),
			CreatedAt: start.AddDate(0, month, 0),
		})
	}
	// A second listing in the final month.
	listings = append(listings, &entity.FoodListing{
		ID:        uuid.New(),
		CreatedAt: start.AddDate(0, 7, 1),
	})

	fx.listingRepo.EXPECT().FindAll(ctx).Return(listings, nil)

	trends, err := fx.service.GetMonthlyTrends(ctx)

	require.NoError(t, err)
	// Eight distinct months shrink to the most recent six, oldest first.
	require.Len(t, trends, 6)
	assert.Equal(t, usecase.MonthlyTrend{Month: "2026-03", Count: 1}, trends[0])
	assert.Equal(t, usecase.MonthlyTrend{Month: "2026-08", Count: 2}, trends[5])
}

func TestAnalyticsService_GetMonthlyTrends_ConfiguredWindow(t *testing.T) {
	cfg := &config.Config{
		Impact: &config.ImpactConfig{TrendMonths: 2},
	}
	fx := createTestAnalyticsService(t, cfg)

	ctx := context.Background()
	listings := []*entity.FoodListing{
		{ID: uuid.New(), CreatedAt: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), CreatedAt: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), CreatedAt: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}

	fx.listingRepo.EXPECT().FindAll(ctx).Return(listings, nil)

	trends, err := fx.service.GetMonthlyTrends(ctx)

	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, "2026-06", trends[0].Month)
	assert.Equal(t, "2026-07", trends[1].Month)
}
