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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// FindByID retrieves a donation request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationRequest, error) {
	var requestM model.DonationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindByRecipient retrieves all requests owned by a recipient, newest first.
func (repo *requestRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.DonationRequest, error) {
	var requestModels []*model.DonationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donation requests by recipient")
	}

	return toRequestDomainSlice(requestModels), nil
}

// FindAll retrieves every donation request, newest first.
func (repo *requestRepository) FindAll(ctx context.Context) ([]*entity.DonationRequest, error) {
	var requestModels []*model.DonationRequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donation requests")
	}

	return toRequestDomainSlice(requestModels), nil
}

// Create persists a new donation request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.DonationRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// UpdateStatusFrom transitions a request between states, guarded on the
// expected current state.
func (repo *requestRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationRequestModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update donation request status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DonationRequestModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check donation request existence")
		}
		if count == 0 {
			return repository.ErrRequestNotFound
		}

		return repository.ErrRequestStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM DonationRequestModel to a domain DonationRequest entity.
func toRequestDomain(data *model.DonationRequestModel) *entity.DonationRequest {
	if data == nil {
		return nil
	}

	return &entity.DonationRequest{
		ID:             data.ID,
		RecipientID:    data.RecipientID,
		ListingID:      data.ListingID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		QuantityNeeded: data.QuantityNeeded,
		Urgency:        entity.Urgency(data.Urgency),
		Status:         entity.RequestStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toRequestDomainSlice(data []*model.DonationRequestModel) []*entity.DonationRequest {
	requests := make([]*entity.DonationRequest, 0, len(data))
	for _, requestM := range data {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

// fromRequestDomain converts a domain DonationRequest entity to a GORM DonationRequestModel.
func fromRequestDomain(data *entity.DonationRequest) *model.DonationRequestModel {
	if data == nil {
		return nil
	}

	return &model.DonationRequestModel{
		ID:             data.ID,
		RecipientID:    data.RecipientID,
		ListingID:      data.ListingID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		QuantityNeeded: data.QuantityNeeded,
		Urgency:        data.Urgency.String(),
		Status:         data.Status.String(),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
