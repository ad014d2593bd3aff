package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// FindByID retrieves a donation by its unique ID.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// FindByRecipient retrieves all donations for a recipient, newest first.
func (repo *donationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donations by recipient")
	}

	return toDonationDomainSlice(donationModels), nil
}

// FindByDonor retrieves all donations against a donor's listings, newest first.
func (repo *donationRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donations by donor")
	}

	return toDonationDomainSlice(donationModels), nil
}

// FindByListing retrieves all donations referencing a listing, newest first.
func (repo *donationRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donations by listing")
	}

	return toDonationDomainSlice(donationModels), nil
}

// FindAll retrieves every donation, newest first.
func (repo *donationRepository) FindAll(ctx context.Context) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donations")
	}

	return toDonationDomainSlice(donationModels), nil
}

// Create persists a new donation.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required donation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	// Update the entity with generated values
	donation.ID = donationM.ID
	donation.CreatedAt = donationM.CreatedAt
	donation.UpdatedAt = donationM.UpdatedAt

	return nil
}

// Update modifies an existing donation's status, dates, and notes.
func (repo *donationRepository) Update(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ?", donationM.ID).
		Updates(map[string]any{
			"status":        donationM.Status,
			"pickup_date":   donationM.PickupDate,
			"delivery_date": donationM.DeliveryDate,
			"impact_notes":  donationM.ImpactNotes,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update donation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:           data.ID,
		ListingID:    data.ListingID,
		DonorID:      data.DonorID,
		RecipientID:  data.RecipientID,
		RequestID:    data.RequestID,
		Quantity:     data.Quantity,
		Status:       entity.DonationStatus(data.Status),
		PickupDate:   data.PickupDate,
		DeliveryDate: data.DeliveryDate,
		ImpactNotes:  data.ImpactNotes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toDonationDomainSlice(data []*model.DonationModel) []*entity.Donation {
	donations := make([]*entity.Donation, 0, len(data))
	for _, donationM := range data {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations
}

// fromDonationDomain converts a domain Donation entity to a GORM DonationModel.
func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	return &model.DonationModel{
		ID:           data.ID,
		ListingID:    data.ListingID,
		DonorID:      data.DonorID,
		RecipientID:  data.RecipientID,
		RequestID:    data.RequestID,
		Quantity:     data.Quantity,
		Status:       data.Status.String(),
		PickupDate:   data.PickupDate,
		DeliveryDate: data.DeliveryDate,
		ImpactNotes:  data.ImpactNotes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
