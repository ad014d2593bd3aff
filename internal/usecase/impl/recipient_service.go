package impl

import (
	"context"
	"log/slog"

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

// recipientService implements the RecipientUsecase interface.
type recipientService struct {
	txManager    repository.TransactionManager
	listingRepo  repository.ListingRepository
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	notifier     service.NotificationService
	logger       *slog.Logger
}

// RecipientServiceParams holds dependencies for recipientService, injected by Fx.
type RecipientServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ListingRepo  repository.ListingRepository
	RequestRepo  repository.RequestRepository
	DonationRepo repository.DonationRepository
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Notifier     service.NotificationService
	Logger       *slog.Logger
}

// NewRecipientService is the constructor for recipientService.
func NewRecipientService(params RecipientServiceParams) usecase.RecipientUsecase {
	return &recipientService{
		txManager:    params.TxManager,
		listingRepo:  params.ListingRepo,
		requestRepo:  params.RequestRepo,
		donationRepo: params.DonationRepo,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

func (srv *recipientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboard retrieves available listings and the recipient's own requests
// with stats computed by linear scans.
func (srv *recipientService) GetDashboard(ctx context.Context, recipientID uuid.UUID) (*usecase.RecipientDashboardOutput, error) {
	listings, err := srv.listingRepo.FindByStatus(ctx, entity.ListingStatusAvailable)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load available listings")
	}

	requests, err := srv.requestRepo.FindByRecipient(ctx, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipient requests")
	}

	stats := usecase.RecipientStats{
		Available:  len(listings),
		MyRequests: len(requests),
	}
	for _, request := range requests {
		if request.Status == entity.RequestStatusFulfilled {
			stats.Fulfilled++
		}
	}

	return &usecase.RecipientDashboardOutput{
		Stats:    stats,
		Listings: listings,
		Requests: requests,
	}, nil
}

// BrowseListings retrieves every available listing, newest first.
func (srv *recipientService) BrowseListings(ctx context.Context) ([]*entity.FoodListing, error) {
	listings, err := srv.listingRepo.FindByStatus(ctx, entity.ListingStatusAvailable)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load available listings")
	}

	return listings, nil
}

// ReserveListing claims an available listing. The donation insert and the
// available→reserved flip run in one transaction with a guard on the current
// status, so two racing recipients cannot both win; the loser gets
// ErrListingNotAvailable.
func (srv *recipientService) ReserveListing(ctx context.Context, recipientID, listingID uuid.UUID, requestID *uuid.UUID) (*entity.Donation, error) {
	var reserved *entity.Donation
	var listing *entity.FoodListing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()
		donationRepo := repoFactory.DonationRepo()
		requestRepo := repoFactory.RequestRepo()

		var err error
		listing, err = listingRepo.FindByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
			}

			return errors.Wrap(err, "failed to find listing")
		}

		if listing.Status != entity.ListingStatusAvailable {
			return errors.Wrap(domainerrors.ErrListingNotAvailable, "listing is not available")
		}
		if listing.DonorID == recipientID {
			return errors.Wrap(domainerrors.ErrForbidden, "cannot reserve own listing")
		}

		if requestID != nil {
			request, err := requestRepo.FindByID(ctx, *requestID)
			if err != nil {
				if errors.Is(err, repository.ErrRequestNotFound) {
					return errors.Wrap(domainerrors.ErrRequestNotFound, "donation request not found")
				}

				return errors.Wrap(err, "failed to find donation request")
			}
			if request.RecipientID != recipientID {
				return errors.Wrap(domainerrors.ErrRequestNotOwned, "donation request belongs to another recipient")
			}
		}

		donation := &entity.Donation{
			ListingID:   listing.ID,
			DonorID:     listing.DonorID,
			RecipientID: recipientID,
			RequestID:   requestID,
			Quantity:    listing.Quantity,
			Status:      entity.DonationStatusPending,
		}

		if err := donationRepo.Create(ctx, donation); err != nil {
			return errors.Wrap(err, "failed to create donation")
		}

		// The guard catches a concurrent reservation committed after our read.
		if err := listingRepo.UpdateStatusFrom(ctx, listing.ID, entity.ListingStatusAvailable, entity.ListingStatusReserved); err != nil {
			if errors.Is(err, repository.ErrListingStatusConflict) {
				return errors.Wrap(domainerrors.ErrListingNotAvailable, "listing was reserved concurrently")
			}

			return errors.Wrap(err, "failed to reserve listing")
		}

		reserved = donation

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to reserve listing",
			slog.Any("listingID", listingID),
			slog.Any("recipientID", recipientID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.notifyReservation(ctx, reserved, listing)

	srv.log(ctx).Info("Listing reserved",
		slog.Any("listingID", listingID),
		slog.Any("donationID", reserved.ID),
	)

	return reserved, nil
}

// notifyReservation publishes the reservation event and pushes a message to
// the donor's topic. Both are best-effort: the reservation is committed.
func (srv *recipientService) notifyReservation(ctx context.Context, donation *entity.Donation, listing *entity.FoodListing) {
	event := &service.DonationEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        constants.EventTypeDonationReserved,
		DonationID:  donation.ID.String(),
		ListingID:   donation.ListingID.String(),
		DonorID:     donation.DonorID.String(),
		RecipientID: donation.RecipientID.String(),
		Category:    listing.Category,
		Quantity:    donation.Quantity,
	}
	if err := srv.publisher.PublishDonationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish reservation event", slog.Any("donationID", donation.ID), slog.Any("error", err))
	}

	topic := "donor-" + donation.DonorID.String()
	data := map[string]string{
		"donation_id": donation.ID.String(),
		"listing_id":  donation.ListingID.String(),
	}
	if err := srv.notifier.SendToTopic(ctx, topic, "Listing reserved", listing.Title+" has been reserved", data); err != nil {
		srv.log(ctx).Error("Failed to push reservation notification", slog.Any("donationID", donation.ID), slog.Any("error", err))
	}
}

// CreateRequest posts a new donation request in the open state.
func (srv *recipientService) CreateRequest(ctx context.Context, recipientID uuid.UUID, input usecase.CreateRequestInput) (*entity.DonationRequest, error) {
	urgency := input.Urgency
	if urgency == "" {
		urgency = entity.UrgencyMedium
	}
	if !urgency.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid urgency")
	}

	request := &entity.DonationRequest{
		RecipientID:    recipientID,
		ListingID:      input.ListingID,
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		QuantityNeeded: input.QuantityNeeded,
		Urgency:        urgency,
		Status:         entity.RequestStatusOpen,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to create donation request", slog.Any("recipientID", recipientID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create donation request")
	}

	srv.log(ctx).Info("Donation request created", slog.Any("requestID", request.ID))

	return request, nil
}

// FulfillRequest marks an own open request fulfilled.
func (srv *recipientService) FulfillRequest(ctx context.Context, recipientID, requestID uuid.UUID) error {
	return srv.transitionOwnRequest(ctx, recipientID, requestID, entity.RequestStatusFulfilled)
}

// CancelRequest withdraws an own open request.
func (srv *recipientService) CancelRequest(ctx context.Context, recipientID, requestID uuid.UUID) error {
	return srv.transitionOwnRequest(ctx, recipientID, requestID, entity.RequestStatusCancelled)
}

func (srv *recipientService) transitionOwnRequest(ctx context.Context, recipientID, requestID uuid.UUID, to entity.RequestStatus) error {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return errors.Wrap(domainerrors.ErrRequestNotFound, "donation request not found")
		}

		return errors.Wrap(err, "failed to find donation request")
	}

	if request.RecipientID != recipientID {
		return errors.Wrap(domainerrors.ErrRequestNotOwned, "donation request belongs to another recipient")
	}

	if err := srv.requestRepo.UpdateStatusFrom(ctx, requestID, entity.RequestStatusOpen, to); err != nil {
		if errors.Is(err, repository.ErrRequestStatusConflict) {
			return errors.Wrap(domainerrors.ErrRequestStateConflict, "donation request is not open")
		}

		return errors.Wrap(err, "failed to update donation request status")
	}

	srv.log(ctx).Info("Donation request status changed",
		slog.Any("requestID", requestID),
		slog.String("status", to.String()),
	)

	return nil
}

// GetPickupQR renders the QR code the recipient presents at pickup.
func (srv *recipientService) GetPickupQR(ctx context.Context, recipientID, donationID uuid.UUID) ([]byte, error) {
	donation, err := srv.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonationNotFound, "donation not found")
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	if donation.RecipientID != recipientID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "donation belongs to another recipient")
	}
	if donation.Status != entity.DonationStatusPending && donation.Status != entity.DonationStatusInTransit {
		return nil, errors.Wrap(domainerrors.ErrDonationStateConflict, "donation is already closed")
	}

	qrBytes, err := srv.qrService.GeneratePickupQR(donation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return qrBytes, nil
}
