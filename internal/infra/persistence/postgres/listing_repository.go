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

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// FindByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodListing, error) {
	var listingM model.FoodListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindByDonor retrieves all listings owned by a donor, newest first.
func (repo *listingRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.FoodListing, error) {
	var listingModels []*model.FoodListingModel

	if err := repo.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by donor")
	}

	return toListingDomainSlice(listingModels), nil
}

// FindByStatus retrieves all listings in the given state, newest first.
func (repo *listingRepository) FindByStatus(ctx context.Context, status entity.ListingStatus) ([]*entity.FoodListing, error) {
	var listingModels []*model.FoodListingModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by status")
	}

	return toListingDomainSlice(listingModels), nil
}

// FindAll retrieves every listing, newest first.
func (repo *listingRepository) FindAll(ctx context.Context) ([]*entity.FoodListing, error) {
	var listingModels []*model.FoodListingModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	return toListingDomainSlice(listingModels), nil
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.FoodListing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// Update modifies the editable fields of an existing listing.
// Status is deliberately excluded; transitions go through UpdateStatusFrom.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.FoodListing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.FoodListingModel{}).
		Where("id = ?", listingM.ID).
		Updates(map[string]any{
			"title":               listingM.Title,
			"description":         listingM.Description,
			"category":            listingM.Category,
			"quantity":            listingM.Quantity,
			"expiry_date":         listingM.ExpiryDate,
			"pickup_location":     listingM.PickupLocation,
			"pickup_instructions": listingM.PickupInstructions,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// UpdateStatusFrom transitions a listing between states. The WHERE clause
// guards on the expected current state so concurrent reservations cannot
// both succeed; the loser sees zero affected rows.
func (repo *listingRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodListingModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing listing from a state mismatch.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.FoodListingModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check listing existence")
		}
		if count == 0 {
			return repository.ErrListingNotFound
		}

		return repository.ErrListingStatusConflict
	}

	return nil
}

// UpdateImageURL sets the stored image reference for a listing.
func (repo *listingRepository) UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodListingModel{}).
		Where("id = ?", id).
		Update("image_url", imageURL)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM FoodListingModel to a domain FoodListing entity.
func toListingDomain(data *model.FoodListingModel) *entity.FoodListing {
	if data == nil {
		return nil
	}

	return &entity.FoodListing{
		ID:                 data.ID,
		DonorID:            data.DonorID,
		Title:              data.Title,
		Description:        data.Description,
		Category:           data.Category,
		Quantity:           data.Quantity,
		ExpiryDate:         data.ExpiryDate,
		PickupLocation:     data.PickupLocation,
		PickupInstructions: data.PickupInstructions,
		Status:             entity.ListingStatus(data.Status),
		ImageURL:           data.ImageURL,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toListingDomainSlice(data []*model.FoodListingModel) []*entity.FoodListing {
	listings := make([]*entity.FoodListing, 0, len(data))
	for _, listingM := range data {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

// fromListingDomain converts a domain FoodListing entity to a GORM FoodListingModel.
func fromListingDomain(data *entity.FoodListing) *model.FoodListingModel {
	if data == nil {
		return nil
	}

	return &model.FoodListingModel{
		ID:                 data.ID,
		DonorID:            data.DonorID,
		Title:              data.Title,
		Description:        data.Description,
		Category:           data.Category,
		Quantity:           data.Quantity,
		ExpiryDate:         data.ExpiryDate,
		PickupLocation:     data.PickupLocation,
		PickupInstructions: data.PickupInstructions,
		Status:             data.Status.String(),
		ImageURL:           data.ImageURL,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
