package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"foodbridge/config"
	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultWaterLitresPerKg = 2.5
	defaultTrendMonths      = 6
)

// analyticsService implements the AnalyticsUsecase interface. Aggregations
// are recomputed per call from the fetched rows; nothing is cached, so two
// calls with no intervening writes return identical snapshots.
type analyticsService struct {
	analyticsRepo    repository.AnalyticsRepository
	donationRepo     repository.DonationRepository
	profileRepo      repository.ProfileRepository
	listingRepo      repository.ListingRepository
	waterLitresPerKg float64
	trendMonths      int
	logger           *slog.Logger
}

// AnalyticsServiceParams holds dependencies for analyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	DonationRepo  repository.DonationRepository
	ProfileRepo   repository.ProfileRepository
	ListingRepo   repository.ListingRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	waterLitresPerKg := defaultWaterLitresPerKg
	trendMonths := defaultTrendMonths
	if params.Config != nil && params.Config.Impact != nil {
		if params.Config.Impact.WaterLitresPerKg > 0 {
			waterLitresPerKg = params.Config.Impact.WaterLitresPerKg
		}
		if params.Config.Impact.TrendMonths > 0 {
			trendMonths = params.Config.Impact.TrendMonths
		}
	}

	return &analyticsService{
		analyticsRepo:    params.AnalyticsRepo,
		donationRepo:     params.DonationRepo,
		profileRepo:      params.ProfileRepo,
		listingRepo:      params.ListingRepo,
		waterLitresPerKg: waterLitresPerKg,
		trendMonths:      trendMonths,
		logger:           params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// impactTotals sums the externally produced analytic rows in one pass.
type impactTotals struct {
	foodSavedKg   float64
	mealsProvided int
	co2SavedKg    float64
}

func (srv *analyticsService) sumAnalytics(ctx context.Context) (impactTotals, error) {
	rows, err := srv.analyticsRepo.FindAll(ctx)
	if err != nil {
		return impactTotals{}, errors.Wrap(err, "failed to load waste analytics")
	}

	var totals impactTotals
	for _, row := range rows {
		totals.foodSavedKg += row.FoodSavedKg
		totals.mealsProvided += row.MealsProvided
		totals.co2SavedKg += row.CO2SavedKg
	}

	return totals, nil
}

// GetOverview summarises donations, participating profiles, and measured impact.
func (srv *analyticsService) GetOverview(ctx context.Context) (*usecase.ImpactOverview, error) {
	donations, err := srv.donationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load donations")
	}

	donorRole := entity.RoleDonor
	donors, err := srv.profileRepo.FindAll(ctx, &donorRole)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load donors")
	}

	recipientRole := entity.RoleRecipient
	recipients, err := srv.profileRepo.FindAll(ctx, &recipientRole)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipients")
	}

	totals, err := srv.sumAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Impact overview computed", slog.Int("donations", len(donations)))

	return &usecase.ImpactOverview{
		TotalDonations:   len(donations),
		ActiveDonors:     len(donors),
		ActiveRecipients: len(recipients),
		FoodSavedKg:      int(math.Round(totals.foodSavedKg)),
		MealsProvided:    totals.mealsProvided,
		CO2SavedKg:       math.Round(totals.co2SavedKg*10) / 10,
	}, nil
}

// GetImpactMetrics reports the headline numbers. Water savings derive from
// the unrounded food weight so the multiplier is not applied to a rounded
// intermediate.
func (srv *analyticsService) GetImpactMetrics(ctx context.Context) (*usecase.ImpactMetrics, error) {
	totals, err := srv.sumAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ImpactMetrics{
		MealsProvided:    totals.mealsProvided,
		FoodSavedKg:      int(math.Round(totals.foodSavedKg)),
		WaterSavedLitres: int(math.Round(totals.foodSavedKg * srv.waterLitresPerKg)),
	}, nil
}

// GetCategoryBreakdown groups listings by category, sorted by count
// descending with ties broken by category name for a deterministic order.
func (srv *analyticsService) GetCategoryBreakdown(ctx context.Context) ([]usecase.CategoryCount, error) {
	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listings")
	}

	counts := make(map[string]int)
	for _, listing := range listings {
		counts[listing.Category]++
	}

	breakdown := make([]usecase.CategoryCount, 0, len(counts))
	for category, count := range counts {
		breakdown = append(breakdown, usecase.CategoryCount{Category: category, Count: count})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}

		return breakdown[i].Category < breakdown[j].Category
	})

	return breakdown, nil
}

// GetMonthlyTrends buckets listings by creation month (YYYY-MM) and keeps
// the most recent buckets, oldest first.
func (srv *analyticsService) GetMonthlyTrends(ctx context.Context) ([]usecase.MonthlyTrend, error) {
	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listings")
	}

	counts := make(map[string]int)
	for _, listing := range listings {
		counts[listing.CreatedAt.Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	// YYYY-MM sorts chronologically as a string.
	sort.Strings(months)

	if len(months) > srv.trendMonths {
		months = months[len(months)-srv.trendMonths:]
	}

	trends := make([]usecase.MonthlyTrend, 0, len(months))
	for _, month := range months {
		trends = append(trends, usecase.MonthlyTrend{Month: month, Count: counts[month]})
	}

	return trends, nil
}
