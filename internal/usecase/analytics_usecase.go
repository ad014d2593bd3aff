package usecase

import (
	"context"
)

// ImpactOverview summarises the marketplace's measured impact.
type ImpactOverview struct {
	TotalDonations   int     `json:"totalDonations"`
	ActiveDonors     int     `json:"activeDonors"`
	ActiveRecipients int     `json:"activeRecipients"`
	FoodSavedKg      int     `json:"foodSavedKg"`
	MealsProvided    int     `json:"mealsProvided"`
	CO2SavedKg       float64 `json:"co2SavedKg"`
}

// ImpactMetrics reports the headline sustainability numbers. Water savings
// are derived from food weight with a configurable multiplier.
type ImpactMetrics struct {
	MealsProvided    int `json:"mealsProvided"`
	FoodSavedKg      int `json:"foodSavedKg"`
	WaterSavedLitres int `json:"waterSavedLitres"`
}

// CategoryCount is one row of the category breakdown, sorted by count
// descending with ties broken by category name.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthlyTrend is one bucket of listing activity, keyed by YYYY-MM.
type MonthlyTrend struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// AnalyticsUsecase defines the interface for the analyst's read-only
// aggregations. Every call recomputes from current rows, so repeated calls
// with no intervening writes return identical snapshots.
type AnalyticsUsecase interface {
	GetOverview(ctx context.Context) (*ImpactOverview, error)
	GetImpactMetrics(ctx context.Context) (*ImpactMetrics, error)
	GetCategoryBreakdown(ctx context.Context) ([]CategoryCount, error)
	GetMonthlyTrends(ctx context.Context) ([]MonthlyTrend, error)
}
