package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recipientServiceFixtures holds all test dependencies for recipient service tests.
type recipientServiceFixtures struct {
	service      usecase.RecipientUsecase
	txManager    *mockRepo.MockTransactionManager
	listingRepo  *mockRepo.MockListingRepository
	requestRepo  *mockRepo.MockRequestRepository
	donationRepo *mockRepo.MockDonationRepository
	qrService    *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
	notifier     *mockSvc.MockNotificationService
}

func createTestRecipientService(t *testing.T) recipientServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	donationRepo := mockRepo.NewMockDonationRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := mockSvc.NewMockNotificationService(t)

	service := NewRecipientService(RecipientServiceParams{
		TxManager:    txManager,
		ListingRepo:  listingRepo,
		RequestRepo:  requestRepo,
		DonationRepo: donationRepo,
		QRService:    qrService,
		Publisher:    publisher,
		Notifier:     notifier,
		Logger:       newDiscardLogger(),
	})

	return recipientServiceFixtures{
		service:      service,
		txManager:    txManager,
		listingRepo:  listingRepo,
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
		qrService:    qrService,
		publisher:    publisher,
		notifier:     notifier,
	}
}

func TestRecipientService_GetDashboard_Stats(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	listings := []*entity.FoodListing{
		{ID: uuid.New(), Status: entity.ListingStatusAvailable},
		{ID: uuid.New(), Status: entity.ListingStatusAvailable},
	}
	requests := []*entity.DonationRequest{
		{ID: uuid.New(), RecipientID: recipientID, Status: entity.RequestStatusOpen},
		{ID: uuid.New(), RecipientID: recipientID, Status: entity.RequestStatusFulfilled},
		{ID: uuid.New(), RecipientID: recipientID, Status: entity.RequestStatusCancelled},
	}

	fx.listingRepo.EXPECT().FindByStatus(ctx, entity.ListingStatusAvailable).Return(listings, nil)
	fx.requestRepo.EXPECT().FindByRecipient(ctx, recipientID).Return(requests, nil)

	output, err := fx.service.GetDashboard(ctx, recipientID)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Stats.Available)
	assert.Equal(t, 3, output.Stats.MyRequests)
	assert.Equal(t, 1, output.Stats.Fulfilled)
}

func TestRecipientService_ReserveListing_Success(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	listingID := uuid.New()
	donorID := uuid.New()
	listing := &entity.FoodListing{
		ID:       listingID,
		DonorID:  donorID,
		Title:    "Surplus bread",
		Category: "bakery",
		Quantity: "20 loaves",
		Status:   entity.ListingStatusAvailable,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)

			mockDonationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Donation")).
				Run(func(ctx context.Context, donation *entity.Donation) {
					donation.ID = uuid.New()
					assert.Equal(t, entity.DonationStatusPending, donation.Status)
					assert.Equal(t, donorID, donation.DonorID)
					assert.Equal(t, "20 loaves", donation.Quantity)
				}).
				Return(nil)

			mockListingRepo.EXPECT().
				UpdateStatusFrom(ctx, listingID, entity.ListingStatusAvailable, entity.ListingStatusReserved).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDonationEvent(ctx, mock.AnythingOfType("*service.DonationEvent")).
		Run(func(ctx context.Context, event *service.DonationEvent) {
			assert.Equal(t, listingID.String(), event.ListingID)
			assert.Equal(t, "bakery", event.Category)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		SendToTopic(ctx, "donor-"+donorID.String(), "Listing reserved", mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(nil)

	donation, err := fx.service.ReserveListing(ctx, recipientID, listingID, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusPending, donation.Status)
	assert.Equal(t, recipientID, donation.RecipientID)
	assert.Nil(t, donation.RequestID)
}

func TestRecipientService_ReserveListing_LostRace(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: uuid.New(),
		Status:  entity.ListingStatusAvailable,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
			mockDonationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Donation")).
				Return(nil)

			// Another recipient committed between our read and the flip.
			mockListingRepo.EXPECT().
				UpdateStatusFrom(ctx, listingID, entity.ListingStatusAvailable, entity.ListingStatusReserved).
				Return(repository.ErrListingStatusConflict)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrListingNotAvailable, "listing was reserved concurrently"))

	donation, err := fx.service.ReserveListing(ctx, recipientID, listingID, nil)

	assert.Error(t, err)
	assert.Nil(t, donation)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotAvailable))
}

func TestRecipientService_ReserveListing_AlreadyReserved(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: uuid.New(),
		Status:  entity.ListingStatusReserved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrListingNotAvailable, "listing is not available"))

	donation, err := fx.service.ReserveListing(ctx, recipientID, listingID, nil)

	assert.Error(t, err)
	assert.Nil(t, donation)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotAvailable))
}

func TestRecipientService_ReserveListing_OwnListing(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: recipientID,
		Status:  entity.ListingStatusAvailable,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "cannot reserve own listing"))

	donation, err := fx.service.ReserveListing(ctx, recipientID, listingID, nil)

	assert.Error(t, err)
	assert.Nil(t, donation)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRecipientService_ReserveListing_LinkedRequestNotOwned(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	listingID := uuid.New()
	requestID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: uuid.New(),
		Status:  entity.ListingStatusAvailable,
	}
	request := &entity.DonationRequest{
		ID:          requestID,
		RecipientID: uuid.New(),
		Status:      entity.RequestStatusOpen,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
			mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrRequestNotOwned, "donation request belongs to another recipient"))

	donation, err := fx.service.ReserveListing(ctx, recipientID, listingID, &requestID)

	assert.Error(t, err)
	assert.Nil(t, donation)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotOwned))
}

func TestRecipientService_ReserveListing_NotifyFailureDoesNotFail(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	listingID := uuid.New()
	donorID := uuid.New()
	listing := &entity.FoodListing{
		ID:       listingID,
		DonorID:  donorID,
		Title:    "Surplus rice",
		Category: "grains",
		Quantity: "10 kg",
		Status:   entity.ListingStatusAvailable,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
			mockDonationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Donation")).
				Return(nil)
			mockListingRepo.EXPECT().
				UpdateStatusFrom(ctx, listingID, entity.ListingStatusAvailable, entity.ListingStatusReserved).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDonationEvent(ctx, mock.AnythingOfType("*service.DonationEvent")).
		Return(errors.New("broker unavailable"))
	fx.notifier.EXPECT().
		SendToTopic(ctx, "donor-"+donorID.String(), "Listing reserved", mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(errors.New("push unavailable"))

	donation, err := fx.service.ReserveListing(ctx, recipientID, listingID, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusPending, donation.Status)
}

func TestRecipientService_CreateRequest_DefaultsToMediumUrgency(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	input := usecase.CreateRequestInput{
		Title:          "Rice for shelter",
		Category:       "grains",
		QuantityNeeded: "25 kg",
	}

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DonationRequest")).
		Run(func(ctx context.Context, request *entity.DonationRequest) {
			request.ID = uuid.New()
		}).
		Return(nil)

	request, err := fx.service.CreateRequest(ctx, recipientID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.UrgencyMedium, request.Urgency)
	assert.Equal(t, entity.RequestStatusOpen, request.Status)
	assert.Equal(t, recipientID, request.RecipientID)
}

func TestRecipientService_CreateRequest_InvalidUrgency(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	input := usecase.CreateRequestInput{
		Title:          "Rice for shelter",
		Category:       "grains",
		QuantityNeeded: "25 kg",
		Urgency:        entity.Urgency("apocalyptic"),
	}

	request, err := fx.service.CreateRequest(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipientService_FulfillRequest_Success(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	requestID := uuid.New()
	request := &entity.DonationRequest{
		ID:          requestID,
		RecipientID: recipientID,
		Status:      entity.RequestStatusOpen,
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.requestRepo.EXPECT().
		UpdateStatusFrom(ctx, requestID, entity.RequestStatusOpen, entity.RequestStatusFulfilled).
		Return(nil)

	err := fx.service.FulfillRequest(ctx, recipientID, requestID)

	require.NoError(t, err)
}

func TestRecipientService_CancelRequest_NotOpen(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	requestID := uuid.New()
	request := &entity.DonationRequest{
		ID:          requestID,
		RecipientID: recipientID,
		Status:      entity.RequestStatusFulfilled,
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.requestRepo.EXPECT().
		UpdateStatusFrom(ctx, requestID, entity.RequestStatusOpen, entity.RequestStatusCancelled).
		Return(repository.ErrRequestStatusConflict)

	err := fx.service.CancelRequest(ctx, recipientID, requestID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestStateConflict))
}

func TestRecipientService_CancelRequest_NotOwned(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	requestID := uuid.New()
	request := &entity.DonationRequest{
		ID:          requestID,
		RecipientID: uuid.New(),
		Status:      entity.RequestStatusOpen,
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)

	err := fx.service.CancelRequest(ctx, uuid.New(), requestID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotOwned))
}

func TestRecipientService_GetPickupQR_Success(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	donationID := uuid.New()
	donation := &entity.Donation{
		ID:          donationID,
		RecipientID: recipientID,
		Status:      entity.DonationStatusPending,
	}
	qrBytes := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.donationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)
	fx.qrService.EXPECT().GeneratePickupQR(donationID).Return(qrBytes, nil)

	png, err := fx.service.GetPickupQR(ctx, recipientID, donationID)

	require.NoError(t, err)
	assert.Equal(t, qrBytes, png)
}

func TestRecipientService_GetPickupQR_WrongRecipient(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	donationID := uuid.New()
	donation := &entity.Donation{
		ID:          donationID,
		RecipientID: uuid.New(),
		Status:      entity.DonationStatusPending,
	}

	fx.donationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)

	png, err := fx.service.GetPickupQR(ctx, uuid.New(), donationID)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRecipientService_GetPickupQR_DeliveredDonation(t *testing.T) {
	fx := createTestRecipientService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	donationID := uuid.New()
	donation := &entity.Donation{
		ID:          donationID,
		RecipientID: recipientID,
		Status:      entity.DonationStatusDelivered,
	}

	fx.donationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)

	png, err := fx.service.GetPickupQR(ctx, recipientID, donationID)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrDonationStateConflict))
}
