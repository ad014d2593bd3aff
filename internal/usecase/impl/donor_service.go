package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// donorService implements the DonorUsecase interface.
type donorService struct {
	txManager    repository.TransactionManager
	listingRepo  repository.ListingRepository
	donationRepo repository.DonationRepository
	qrService    service.QRCodeService
	imageStore   service.ImageStore
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// DonorServiceParams holds dependencies for donorService, injected by Fx.
type DonorServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ListingRepo  repository.ListingRepository
	DonationRepo repository.DonationRepository
	QRService    service.QRCodeService
	ImageStore   service.ImageStore
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewDonorService is the constructor for donorService.
func NewDonorService(params DonorServiceParams) usecase.DonorUsecase {
	return &donorService{
		txManager:    params.TxManager,
		listingRepo:  params.ListingRepo,
		donationRepo: params.DonationRepo,
		qrService:    params.QRService,
		imageStore:   params.ImageStore,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *donorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboard retrieves the donor's listings with stats computed by a
// single linear scan.
func (srv *donorService) GetDashboard(ctx context.Context, donorID uuid.UUID) (*usecase.DonorDashboardOutput, error) {
	listings, err := srv.listingRepo.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load donor listings")
	}

	stats := usecase.DonorStats{Total: len(listings)}
	for _, listing := range listings {
		switch listing.Status {
		case entity.ListingStatusAvailable:
			stats.Available++
		case entity.ListingStatusCompleted:
			stats.Completed++
		}
	}

	return &usecase.DonorDashboardOutput{
		Stats:    stats,
		Listings: listings,
	}, nil
}

// CreateListing publishes a new listing. Every listing starts available.
func (srv *donorService) CreateListing(ctx context.Context, donorID uuid.UUID, input usecase.CreateListingInput) (*entity.FoodListing, error) {
	listing := &entity.FoodListing{
		DonorID:            donorID,
		Title:              input.Title,
		Description:        input.Description,
		Category:           input.Category,
		Quantity:           input.Quantity,
		ExpiryDate:         input.ExpiryDate,
		PickupLocation:     input.PickupLocation,
		PickupInstructions: input.PickupInstructions,
		Status:             entity.ListingStatusAvailable,
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.Any("donorID", donorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created", slog.Any("listingID", listing.ID), slog.Any("donorID", donorID))

	return listing, nil
}

// loadOwnedListing fetches a listing and verifies the donor owns it.
func (srv *donorService) loadOwnedListing(ctx context.Context, donorID, listingID uuid.UUID) (*entity.FoodListing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if listing.DonorID != donorID {
		return nil, errors.Wrap(domainerrors.ErrListingNotOwned, "listing belongs to another donor")
	}

	return listing, nil
}

// UpdateListing modifies an owned, non-terminal listing's descriptive fields.
func (srv *donorService) UpdateListing(ctx context.Context, donorID, listingID uuid.UUID, input usecase.UpdateListingInput) (*entity.FoodListing, error) {
	listing, err := srv.loadOwnedListing(ctx, donorID, listingID)
	if err != nil {
		return nil, err
	}

	if listing.Status.IsTerminal() {
		return nil, errors.Wrap(domainerrors.ErrListingStateConflict, "listing is already closed")
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Category = input.Category
	listing.Quantity = input.Quantity
	listing.ExpiryDate = input.ExpiryDate
	listing.PickupLocation = input.PickupLocation
	listing.PickupInstructions = input.PickupInstructions

	if err := srv.listingRepo.Update(ctx, listing); err != nil {
		srv.log(ctx).Error("Failed to update listing", slog.Any("listingID", listingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update listing")
	}

	return listing, nil
}

// CompleteListing marks an available listing completed.
func (srv *donorService) CompleteListing(ctx context.Context, donorID, listingID uuid.UUID) error {
	return srv.transitionOwnListing(ctx, donorID, listingID, entity.ListingStatusCompleted)
}

// CancelListing withdraws an available listing.
func (srv *donorService) CancelListing(ctx context.Context, donorID, listingID uuid.UUID) error {
	return srv.transitionOwnListing(ctx, donorID, listingID, entity.ListingStatusCancelled)
}

// transitionOwnListing moves an owned listing out of the available state.
// Reserved listings are closed through the donation delivery flow instead.
func (srv *donorService) transitionOwnListing(ctx context.Context, donorID, listingID uuid.UUID, to entity.ListingStatus) error {
	if _, err := srv.loadOwnedListing(ctx, donorID, listingID); err != nil {
		return err
	}

	err := srv.listingRepo.UpdateStatusFrom(ctx, listingID, entity.ListingStatusAvailable, to)
	if err != nil {
		if errors.Is(err, repository.ErrListingStatusConflict) {
			return errors.Wrap(domainerrors.ErrListingStateConflict, "listing is not available")
		}

		return errors.Wrap(err, "failed to update listing status")
	}

	srv.log(ctx).Info("Listing status changed",
		slog.Any("listingID", listingID),
		slog.String("status", to.String()),
	)

	return nil
}

// UploadListingImage stores an image for an owned listing and records its URL.
func (srv *donorService) UploadListingImage(ctx context.Context, donorID, listingID uuid.UUID, contentType string, image io.Reader) (string, error) {
	if _, err := srv.loadOwnedListing(ctx, donorID, listingID); err != nil {
		return "", err
	}

	// A fresh object key per upload avoids stale CDN caches on replacement.
	key := fmt.Sprintf("listings/%s/%s%s", listingID, uuid.New(), extensionFor(contentType))

	url, err := srv.imageStore.Save(ctx, key, contentType, image)
	if err != nil {
		srv.log(ctx).Error("Failed to store listing image", slog.Any("listingID", listingID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store listing image")
	}

	if err := srv.listingRepo.UpdateImageURL(ctx, listingID, url); err != nil {
		return "", errors.Wrap(err, "failed to record listing image URL")
	}

	srv.log(ctx).Info("Listing image uploaded", slog.Any("listingID", listingID), slog.String("url", url))

	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// ConfirmPickup resolves a scanned pickup QR code and marks the donation in
// transit.
func (srv *donorService) ConfirmPickup(ctx context.Context, donorID uuid.UUID, qrData string) (*entity.Donation, error) {
	donationID, err := srv.qrService.ParsePickupQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unrecognized pickup code")
	}

	donation, err := srv.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonationNotFound, "donation not found")
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	if donation.DonorID != donorID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "donation belongs to another donor")
	}
	if donation.Status != entity.DonationStatusPending {
		return nil, errors.Wrap(domainerrors.ErrDonationStateConflict, "donation is not awaiting pickup")
	}

	now := time.Now()
	donation.Status = entity.DonationStatusInTransit
	donation.PickupDate = &now

	if err := srv.donationRepo.Update(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to update donation")
	}

	srv.log(ctx).Info("Pickup confirmed", slog.Any("donationID", donation.ID))

	return donation, nil
}

// ConfirmDelivery closes out a donation: the donation becomes delivered, the
// reserved listing becomes completed, and a delivery event is published for
// the impact pipeline.
func (srv *donorService) ConfirmDelivery(ctx context.Context, donorID, donationID uuid.UUID, impactNotes string) (*entity.Donation, error) {
	var delivered *entity.Donation
	var listing *entity.FoodListing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		donationRepo := repoFactory.DonationRepo()
		listingRepo := repoFactory.ListingRepo()

		donation, err := donationRepo.FindByID(ctx, donationID)
		if err != nil {
			if errors.Is(err, repository.ErrDonationNotFound) {
				return errors.Wrap(domainerrors.ErrDonationNotFound, "donation not found")
			}

			return errors.Wrap(err, "failed to find donation")
		}

		if donation.DonorID != donorID {
			return errors.Wrap(domainerrors.ErrForbidden, "donation belongs to another donor")
		}
		if donation.Status != entity.DonationStatusInTransit {
			return errors.Wrap(domainerrors.ErrDonationStateConflict, "donation is not in transit")
		}

		listing, err = listingRepo.FindByID(ctx, donation.ListingID)
		if err != nil {
			return errors.Wrap(err, "failed to find reserved listing")
		}

		now := time.Now()
		donation.Status = entity.DonationStatusDelivered
		donation.DeliveryDate = &now
		donation.ImpactNotes = impactNotes

		if err := donationRepo.Update(ctx, donation); err != nil {
			return errors.Wrap(err, "failed to update donation")
		}

		if err := listingRepo.UpdateStatusFrom(ctx, donation.ListingID, entity.ListingStatusReserved, entity.ListingStatusCompleted); err != nil {
			return errors.Wrap(err, "failed to complete reserved listing")
		}

		delivered = donation

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to confirm delivery", slog.Any("donationID", donationID), slog.Any("error", err))

		return nil, err
	}

	// Event publishing is best-effort; the delivery itself is already committed.
	event := &service.DonationEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        constants.EventTypeDonationDelivered,
		DonationID:  delivered.ID.String(),
		ListingID:   delivered.ListingID.String(),
		DonorID:     delivered.DonorID.String(),
		RecipientID: delivered.RecipientID.String(),
		Category:    listing.Category,
		Quantity:    delivered.Quantity,
	}
	if err := srv.publisher.PublishDonationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish delivery event", slog.Any("donationID", delivered.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Delivery confirmed", slog.Any("donationID", delivered.ID))

	return delivered, nil
}
