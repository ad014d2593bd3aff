package impl

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	profileRepo      *mockRepo.MockProfileRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T, maxActiveSessions int) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		ProfileRepo:      profileRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:          service,
		txManager:        txManager,
		profileRepo:      profileRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FullName: "Test Donor",
		Email:    "donor@example.com",
		Password: "Password123!",
		Role:     entity.RoleDonor,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					profile.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.Profile.Email)
	assert.Equal(t, entity.RoleDonor, output.Profile.Role)
	assert.NotEqual(t, uuid.Nil, output.Profile.ID)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FullName: "Test Donor",
		Email:    "taken@example.com",
		Password: "Password123!",
		Role:     entity.RoleDonor,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{ProfileID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProfileAlreadyExists, "email already registered"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FullName: "Test User",
		Email:    "user@example.com",
		Password: "Password123!",
		Role:     entity.Role("driver"),
	}

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FullName: "Test User",
		Email:    "user@example.com",
		Password: "weak",
		Role:     entity.RoleRecipient,
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.New("password too short"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "donor@example.com",
		Password: "Password123!",
	}

	profileID := uuid.New()
	authRecord := &entity.Authentication{
		ProfileID:      profileID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: input.Email,
		PasswordHash:   "hashed_password",
	}
	profile := &entity.Profile{
		ID:    profileID,
		Email: input.Email,
		Role:  entity.RoleDonor,
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(profileID, entity.RoleDonor).
		Return("access_token", "refresh_token", nil)

	// No session cap configured, the token record is inserted directly.
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, profileID, token.ProfileID)
			assert.Equal(t, "token_hash", token.TokenHash)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, profile, output.Profile)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "donor@example.com",
		Password: "wrong",
	}

	authRecord := &entity.Authentication{
		ProfileID:    uuid.New(),
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestAccountService(t, 1)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "donor@example.com",
		Password: "Password123!",
	}

	profileID := uuid.New()
	authRecord := &entity.Authentication{
		ProfileID:    profileID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}
	profile := &entity.Profile{
		ID:   profileID,
		Role: entity.RoleDonor,
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(profileID, entity.RoleDonor).
		Return("access_token", "refresh_token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			activeSession := &entity.RefreshToken{
				ID:        uuid.New(),
				ProfileID: profileID,
				ExpiresAt: time.Now().Add(time.Hour),
			}
			mockRefreshRepo.EXPECT().
				FindByProfileID(ctx, profileID).
				Return([]*entity.RefreshToken{activeSession}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded"))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestAccountService_Login_ExpiredSessionsDoNotCount(t *testing.T) {
	fx := createTestAccountService(t, 1)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "donor@example.com",
		Password: "Password123!",
	}

	profileID := uuid.New()
	authRecord := &entity.Authentication{
		ProfileID:    profileID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}
	profile := &entity.Profile{
		ID:   profileID,
		Role: entity.RoleDonor,
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(profileID, entity.RoleDonor).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			expiredSession := &entity.RefreshToken{
				ID:        uuid.New(),
				ProfileID: profileID,
				ExpiresAt: time.Now().Add(-time.Hour),
			}
			mockRefreshRepo.EXPECT().
				FindByProfileID(ctx, profileID).
				Return([]*entity.RefreshToken{expiredSession}, nil)

			mockRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestAccountService_RefreshSession_RotatesToken(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	profileID := uuid.New()
	storedID := uuid.New()

	profile := &entity.Profile{
		ID:   profileID,
		Role: entity.RoleRecipient,
	}
	stored := &entity.RefreshToken{
		ID:        storedID,
		ProfileID: profileID,
		TokenHash: "old_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("old_refresh").Return(profileID, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")
	fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().FindByTokenHash(ctx, "old_hash").Return(stored, nil)
			mockProfileRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)

			fx.tokenService.EXPECT().
				GenerateTokens(profileID, entity.RoleRecipient).
				Return("new_access", "new_refresh", nil)

			// The presented token is revoked before the new one is stored.
			mockRefreshRepo.EXPECT().Delete(ctx, storedID).Return(nil)
			mockRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "new_hash", token.TokenHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RefreshSession(ctx, "old_refresh")

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAccountService_RefreshSession_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(uuid.Nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshSession(ctx, "garbage")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_RefreshSession_Expired(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	profileID := uuid.New()

	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		ProfileID: profileID,
		TokenHash: "old_hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("old_refresh").Return(profileID, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo).Maybe()
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().FindByTokenHash(ctx, "old_hash").Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired"))

	output, err := fx.service.RefreshSession(ctx, "old_refresh")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_Logout_Success(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	profileID := uuid.New()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		ProfileID: profileID,
		TokenHash: "token_hash",
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh_token").Return(profileID, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "token_hash").Return(stored, nil)
	fx.refreshTokenRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)

	err := fx.service.Logout(ctx, "refresh_token")

	require.NoError(t, err)
}

func TestAccountService_Logout_Idempotent(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh_token").Return(uuid.New(), nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "token_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "refresh_token")

	require.NoError(t, err)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, profileID)

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	profileID := uuid.New()
	existing := &entity.Profile{
		ID:       profileID,
		Email:    "donor@example.com",
		FullName: "Old Name",
		Role:     entity.RoleDonor,
	}
	input := usecase.UpdateProfileInput{
		FullName:         "New Name",
		OrganizationName: "Food Rescue Org",
		Phone:            "555-0100",
		Address:          "1 Market St",
	}

	fx.profileRepo.EXPECT().FindByID(ctx, profileID).Return(existing, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, "New Name", profile.FullName)
			assert.Equal(t, "Food Rescue Org", profile.OrganizationName)
			assert.Equal(t, "donor@example.com", profile.Email)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, profileID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
	assert.Equal(t, entity.RoleDonor, updated.Role)
}
