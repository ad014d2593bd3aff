package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface. All operations are
// read-only views over the marketplace.
type adminService struct {
	profileRepo repository.ProfileRepository
	listingRepo repository.ListingRepository
	requestRepo repository.RequestRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	ListingRepo repository.ListingRepository
	RequestRepo repository.RequestRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		profileRepo: params.ProfileRepo,
		listingRepo: params.ListingRepo,
		requestRepo: params.RequestRepo,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOverview counts users by role, listings by status, and requests.
func (srv *adminService) GetOverview(ctx context.Context) (*usecase.AdminOverview, error) {
	profiles, err := srv.profileRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}

	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listings")
	}

	requests, err := srv.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load donation requests")
	}

	overview := &usecase.AdminOverview{
		UsersByRole:      make(map[string]int),
		ListingsByStatus: make(map[string]int),
		RequestsTotal:    len(requests),
	}

	for _, profile := range profiles {
		overview.UsersByRole[profile.Role.String()]++
	}
	for _, listing := range listings {
		overview.ListingsByStatus[listing.Status.String()]++
	}
	for _, request := range requests {
		if request.Status == entity.RequestStatusOpen {
			overview.RequestsOpen++
		}
	}

	srv.log(ctx).Debug("Admin overview computed",
		slog.Int("profiles", len(profiles)),
		slog.Int("listings", len(listings)),
		slog.Int("requests", len(requests)),
	)

	return overview, nil
}

// ListProfiles retrieves every profile, optionally filtered by role.
func (srv *adminService) ListProfiles(ctx context.Context, role *entity.Role) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindAll(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}

	return profiles, nil
}

// ListListings retrieves every listing, optionally filtered by status.
func (srv *adminService) ListListings(ctx context.Context, status *entity.ListingStatus) ([]*entity.FoodListing, error) {
	if status != nil {
		listings, err := srv.listingRepo.FindByStatus(ctx, *status)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load listings by status")
		}

		return listings, nil
	}

	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listings")
	}

	return listings, nil
}
