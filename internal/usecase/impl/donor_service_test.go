package impl

import (
	"bytes"
	"context"
	"io"
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

// donorServiceFixtures holds all test dependencies for donor service tests.
type donorServiceFixtures struct {
	service      usecase.DonorUsecase
	txManager    *mockRepo.MockTransactionManager
	listingRepo  *mockRepo.MockListingRepository
	donationRepo *mockRepo.MockDonationRepository
	qrService    *mockSvc.MockQRCodeService
	imageStore   *mockSvc.MockImageStore
	publisher    *mockSvc.MockEventPublisher
}

func createTestDonorService(t *testing.T) donorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	donationRepo := mockRepo.NewMockDonationRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	imageStore := mockSvc.NewMockImageStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewDonorService(DonorServiceParams{
		TxManager:    txManager,
		ListingRepo:  listingRepo,
		DonationRepo: donationRepo,
		QRService:    qrService,
		ImageStore:   imageStore,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return donorServiceFixtures{
		service:      service,
		txManager:    txManager,
		listingRepo:  listingRepo,
		donationRepo: donationRepo,
		qrService:    qrService,
		imageStore:   imageStore,
		publisher:    publisher,
	}
}

func TestDonorService_GetDashboard_Stats(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listings := []*entity.FoodListing{
		{ID: uuid.New(), DonorID: donorID, Status: entity.ListingStatusAvailable},
		{ID: uuid.New(), DonorID: donorID, Status: entity.ListingStatusAvailable},
		{ID: uuid.New(), DonorID: donorID, Status: entity.ListingStatusReserved},
		{ID: uuid.New(), DonorID: donorID, Status: entity.ListingStatusCompleted},
		{ID: uuid.New(), DonorID: donorID, Status: entity.ListingStatusCancelled},
	}

	fx.listingRepo.EXPECT().FindByDonor(ctx, donorID).Return(listings, nil)

	output, err := fx.service.GetDashboard(ctx, donorID)

	require.NoError(t, err)
	assert.Equal(t, 5, output.Stats.Total)
	assert.Equal(t, 2, output.Stats.Available)
	assert.Equal(t, 1, output.Stats.Completed)
	assert.Len(t, output.Listings, 5)
}

func TestDonorService_CreateListing_StartsAvailable(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	input := usecase.CreateListingInput{
		Title:          "Surplus bread",
		Category:       "bakery",
		Quantity:       "20 loaves",
		PickupLocation: "12 Baker St",
	}

	fx.listingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodListing")).
		Run(func(ctx context.Context, listing *entity.FoodListing) {
			listing.ID = uuid.New()
		}).
		Return(nil)

	listing, err := fx.service.CreateListing(ctx, donorID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusAvailable, listing.Status)
	assert.Equal(t, donorID, listing.DonorID)
	assert.Equal(t, "Surplus bread", listing.Title)
	assert.NotEqual(t, uuid.Nil, listing.ID)
}

func TestDonorService_UpdateListing_NotOwned(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: uuid.New(),
		Status:  entity.ListingStatusAvailable,
	}

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)

	updated, err := fx.service.UpdateListing(ctx, donorID, listingID, usecase.UpdateListingInput{Title: "New title"})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotOwned))
}

func TestDonorService_UpdateListing_ClosedListing(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: donorID,
		Status:  entity.ListingStatusCompleted,
	}

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)

	updated, err := fx.service.UpdateListing(ctx, donorID, listingID, usecase.UpdateListingInput{Title: "New title"})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrListingStateConflict))
}

func TestDonorService_UpdateListing_Success(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: donorID,
		Title:   "Old title",
		Status:  entity.ListingStatusAvailable,
	}
	input := usecase.UpdateListingInput{
		Title:          "New title",
		Category:       "produce",
		Quantity:       "5 kg",
		PickupLocation: "34 Orchard Rd",
	}

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
	fx.listingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.FoodListing")).
		Run(func(ctx context.Context, updated *entity.FoodListing) {
			assert.Equal(t, "New title", updated.Title)
			assert.Equal(t, entity.ListingStatusAvailable, updated.Status)
		}).
		Return(nil)

	updated, err := fx.service.UpdateListing(ctx, donorID, listingID, input)

	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "produce", updated.Category)
}

func TestDonorService_CompleteListing_Success(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: donorID,
		Status:  entity.ListingStatusAvailable,
	}

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
	fx.listingRepo.EXPECT().
		UpdateStatusFrom(ctx, listingID, entity.ListingStatusAvailable, entity.ListingStatusCompleted).
		Return(nil)

	err := fx.service.CompleteListing(ctx, donorID, listingID)

	require.NoError(t, err)
}

func TestDonorService_CancelListing_NotAvailable(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: donorID,
		Status:  entity.ListingStatusReserved,
	}

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
	fx.listingRepo.EXPECT().
		UpdateStatusFrom(ctx, listingID, entity.ListingStatusAvailable, entity.ListingStatusCancelled).
		Return(repository.ErrListingStatusConflict)

	err := fx.service.CancelListing(ctx, donorID, listingID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrListingStateConflict))
}

func TestDonorService_CancelListing_NotFound(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listingID := uuid.New()

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(nil, repository.ErrListingNotFound)

	err := fx.service.CancelListing(ctx, donorID, listingID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestDonorService_UploadListingImage_Success(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	listingID := uuid.New()
	listing := &entity.FoodListing{
		ID:      listingID,
		DonorID: donorID,
		Status:  entity.ListingStatusAvailable,
	}
	image := bytes.NewBufferString("not really a png")

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
	fx.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", image).
		Run(func(ctx context.Context, key string, contentType string, r io.Reader) {
			assert.Contains(t, key, "listings/"+listingID.String()+"/")
			assert.Contains(t, key, ".png")
		}).
		Return("https://cdn.example.com/listings/img.png", nil)
	fx.listingRepo.EXPECT().
		UpdateImageURL(ctx, listingID, "https://cdn.example.com/listings/img.png").
		Return(nil)

	url, err := fx.service.UploadListingImage(ctx, donorID, listingID, "image/png", image)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/listings/img.png", url)
}

func TestDonorService_ConfirmPickup_Success(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	donationID := uuid.New()
	donation := &entity.Donation{
		ID:      donationID,
		DonorID: donorID,
		Status:  entity.DonationStatusPending,
	}

	fx.qrService.EXPECT().ParsePickupQR("qr_payload").Return(donationID, nil)
	fx.donationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)
	fx.donationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Donation")).
		Run(func(ctx context.Context, updated *entity.Donation) {
			assert.Equal(t, entity.DonationStatusInTransit, updated.Status)
			assert.NotNil(t, updated.PickupDate)
		}).
		Return(nil)

	picked, err := fx.service.ConfirmPickup(ctx, donorID, "qr_payload")

	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusInTransit, picked.Status)
	assert.NotNil(t, picked.PickupDate)
}

func TestDonorService_ConfirmPickup_BadQRCode(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.qrService.EXPECT().
		ParsePickupQR("garbage").
		Return(uuid.Nil, errors.New("invalid payload"))

	picked, err := fx.service.ConfirmPickup(ctx, uuid.New(), "garbage")

	assert.Error(t, err)
	assert.Nil(t, picked)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDonorService_ConfirmPickup_WrongDonor(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donationID := uuid.New()
	donation := &entity.Donation{
		ID:      donationID,
		DonorID: uuid.New(),
		Status:  entity.DonationStatusPending,
	}

	fx.qrService.EXPECT().ParsePickupQR("qr_payload").Return(donationID, nil)
	fx.donationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)

	picked, err := fx.service.ConfirmPickup(ctx, uuid.New(), "qr_payload")

	assert.Error(t, err)
	assert.Nil(t, picked)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestDonorService_ConfirmPickup_AlreadyPickedUp(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	donationID := uuid.New()
	donation := &entity.Donation{
		ID:      donationID,
		DonorID: donorID,
		Status:  entity.DonationStatusInTransit,
	}

	fx.qrService.EXPECT().ParsePickupQR("qr_payload").Return(donationID, nil)
	fx.donationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)

	picked, err := fx.service.ConfirmPickup(ctx, donorID, "qr_payload")

	assert.Error(t, err)
	assert.Nil(t, picked)
	assert.True(t, errors.Is(err, domainerrors.ErrDonationStateConflict))
}

func TestDonorService_ConfirmDelivery_Success(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	donationID := uuid.New()
	listingID := uuid.New()
	recipientID := uuid.New()

	donation := &entity.Donation{
		ID:          donationID,
		ListingID:   listingID,
		DonorID:     donorID,
		RecipientID: recipientID,
		Quantity:    "5 kg",
		Status:      entity.DonationStatusInTransit,
	}
	listing := &entity.FoodListing{
		ID:       listingID,
		DonorID:  donorID,
		Category: "produce",
		Status:   entity.ListingStatusReserved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockDonationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)
			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)

			mockDonationRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Donation")).
				Run(func(ctx context.Context, updated *entity.Donation) {
					assert.Equal(t, entity.DonationStatusDelivered, updated.Status)
					assert.NotNil(t, updated.DeliveryDate)
					assert.Equal(t, "fed 40 people", updated.ImpactNotes)
				}).
				Return(nil)

			mockListingRepo.EXPECT().
				UpdateStatusFrom(ctx, listingID, entity.ListingStatusReserved, entity.ListingStatusCompleted).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDonationEvent(ctx, mock.AnythingOfType("*service.DonationEvent")).
		Run(func(ctx context.Context, event *service.DonationEvent) {
			assert.Equal(t, donationID.String(), event.DonationID)
			assert.Equal(t, "produce", event.Category)
			assert.Equal(t, "5 kg", event.Quantity)
		}).
		Return(nil)

	delivered, err := fx.service.ConfirmDelivery(ctx, donorID, donationID, "fed 40 people")

	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusDelivered, delivered.Status)
	assert.NotNil(t, delivered.DeliveryDate)
}

func TestDonorService_ConfirmDelivery_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	donationID := uuid.New()
	listingID := uuid.New()

	donation := &entity.Donation{
		ID:          donationID,
		ListingID:   listingID,
		DonorID:     donorID,
		RecipientID: uuid.New(),
		Status:      entity.DonationStatusInTransit,
	}
	listing := &entity.FoodListing{
		ID:       listingID,
		DonorID:  donorID,
		Category: "bakery",
		Status:   entity.ListingStatusReserved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockDonationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)
			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
			mockDonationRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Donation")).
				Return(nil)
			mockListingRepo.EXPECT().
				UpdateStatusFrom(ctx, listingID, entity.ListingStatusReserved, entity.ListingStatusCompleted).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDonationEvent(ctx, mock.AnythingOfType("*service.DonationEvent")).
		Return(errors.New("broker unavailable"))

	delivered, err := fx.service.ConfirmDelivery(ctx, donorID, donationID, "")

	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusDelivered, delivered.Status)
}

func TestDonorService_ConfirmDelivery_NotInTransit(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donorID := uuid.New()
	donationID := uuid.New()

	donation := &entity.Donation{
		ID:      donationID,
		DonorID: donorID,
		Status:  entity.DonationStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDonationRepo := mockRepo.NewMockDonationRepository(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().DonationRepo().Return(mockDonationRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockDonationRepo.EXPECT().FindByID(ctx, donationID).Return(donation, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrDonationStateConflict, "donation is not in transit"))

	delivered, err := fx.service.ConfirmDelivery(ctx, donorID, donationID, "")

	assert.Error(t, err)
	assert.Nil(t, delivered)
	assert.True(t, errors.Is(err, domainerrors.ErrDonationStateConflict))
}
