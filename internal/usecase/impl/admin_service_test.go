package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	mockRepo "foodbridge/internal/mocks/repository"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	profileRepo *mockRepo.MockProfileRepository
	listingRepo *mockRepo.MockListingRepository
	requestRepo *mockRepo.MockRequestRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)

	service := NewAdminService(AdminServiceParams{
		ProfileRepo: profileRepo,
		ListingRepo: listingRepo,
		RequestRepo: requestRepo,
		Logger:      newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		listingRepo: listingRepo,
		requestRepo: requestRepo,
	}
}

func TestAdminService_GetOverview_Counts(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	profiles := []*entity.Profile{
		{ID: uuid.New(), Role: entity.RoleDonor},
		{ID: uuid.New(), Role: entity.RoleDonor},
		{ID: uuid.New(), Role: entity.RoleRecipient},
		{ID: uuid.New(), Role: entity.RoleAdmin},
	}
	listings := []*entity.FoodListing{
		{ID: uuid.New(), Status: entity.ListingStatusAvailable},
		{ID: uuid.New(), Status: entity.ListingStatusReserved},
		{ID: uuid.New(), Status: entity.ListingStatusCompleted},
		{ID: uuid.New(), Status: entity.ListingStatusCompleted},
	}
	requests := []*entity.DonationRequest{
		{ID: uuid.New(), Status: entity.RequestStatusOpen},
		{ID: uuid.New(), Status: entity.RequestStatusFulfilled},
		{ID: uuid.New(), Status: entity.RequestStatusOpen},
	}

	fx.profileRepo.EXPECT().FindAll(ctx, (*entity.Role)(nil)).Return(profiles, nil)
	fx.listingRepo.EXPECT().FindAll(ctx).Return(listings, nil)
	fx.requestRepo.EXPECT().FindAll(ctx).Return(requests, nil)

	overview, err := fx.service.GetOverview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, overview.UsersByRole["donor"])
	assert.Equal(t, 1, overview.UsersByRole["recipient"])
	assert.Equal(t, 1, overview.UsersByRole["admin"])
	assert.Equal(t, 0, overview.UsersByRole["analyst"])
	assert.Equal(t, 2, overview.ListingsByStatus["completed"])
	assert.Equal(t, 1, overview.ListingsByStatus["available"])
	assert.Equal(t, 3, overview.RequestsTotal)
	assert.Equal(t, 2, overview.RequestsOpen)
}

func TestAdminService_ListProfiles_FilteredByRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	role := entity.RoleDonor
	donors := []*entity.Profile{
		{ID: uuid.New(), Role: entity.RoleDonor},
	}

	fx.profileRepo.EXPECT().FindAll(ctx, &role).Return(donors, nil)

	profiles, err := fx.service.ListProfiles(ctx, &role)

	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestAdminService_ListListings_FilteredByStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	status := entity.ListingStatusAvailable
	available := []*entity.FoodListing{
		{ID: uuid.New(), Status: entity.ListingStatusAvailable},
	}

	fx.listingRepo.EXPECT().FindByStatus(ctx, status).Return(available, nil)

	listings, err := fx.service.ListListings(ctx, &status)

	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestAdminService_ListListings_Unfiltered(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	all := []*entity.FoodListing{
		{ID: uuid.New(), Status: entity.ListingStatusAvailable},
		{ID: uuid.New(), Status: entity.ListingStatusCancelled},
	}

	fx.listingRepo.EXPECT().FindAll(ctx).Return(all, nil)

	listings, err := fx.service.ListListings(ctx, nil)

	require.NoError(t, err)
	assert.Len(t, listings, 2)
}
