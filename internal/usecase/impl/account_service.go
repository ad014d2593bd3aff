// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/config"
	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	profileRepo       repository.ProfileRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ProfileRepo      repository.ProfileRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &accountService{
		txManager:         params.TxManager,
		profileRepo:       params.ProfileRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. Profile and
// credential are created in one transaction; the role is fixed here and
// never changes afterwards.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", input.Email))

	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "registration failed")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredProfile *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newProfile := &entity.Profile{
			Email:            input.Email,
			FullName:         input.FullName,
			Role:             input.Role,
			OrganizationName: input.OrganizationName,
			Phone:            input.Phone,
			Address:          input.Address,
		}

		if err := profileRepo.Create(ctx, newProfile); err != nil {
			return errors.Wrap(err, "failed to create profile during registration")
		}

		newAuth := &entity.Authentication{
			ProfileID:      newProfile.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}

		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredProfile = newProfile

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", input.Role), slog.Any("profileID", registeredProfile.ID))

	return &usecase.RegisterOutput{Profile: registeredProfile}, nil
}

// Login verifies credentials and opens a new session.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	profile, err := srv.profileRepo.FindByID(ctx, authRecord.ProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile during login")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(profile.ID, profile.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, profile.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("profileID", profile.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Profile:      profile,
	}, nil
}

// persistRefreshToken stores the session record, enforcing the configured
// active session cap when one is set.
func (srv *accountService) persistRefreshToken(ctx context.Context, profileID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions <= 0 {
		// No session limit: direct insert avoids unnecessary transaction overhead.
		return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, profileID, refreshTokenString)
	}

	// Keep count and insert in one short transaction when a cap is enforced.
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		sessions, err := refreshRepo.FindByProfileID(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to list active sessions")
		}

		active := 0
		now := time.Now()
		for _, session := range sessions {
			if session.ExpiresAt.After(now) {
				active++
			}
		}
		if active >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, profileID, refreshTokenString)
	})
}

func (srv *accountService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, profileID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		ProfileID: profileID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshSession rotates the refresh token: the presented token is revoked
// and a fresh pair is issued, so a stolen token can be used at most once.
func (srv *accountService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh session")

	profileID, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var newAccessToken, newRefreshToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		tokenHash := srv.tokenService.HashToken(refreshToken)

		stored, err := refreshRepo.FindByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.ExpiresAt.Before(time.Now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
		}

		profile, err := profileRepo.FindByID(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		newAccessToken, newRefreshToken, err = srv.tokenService.GenerateTokens(profile.ID, profile.Role)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		// Rotate: revoke the presented token and persist the new one.
		if err := refreshRepo.Delete(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke old refresh token")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, profile.ID, newRefreshToken)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.Any("error", err))

		return nil, err
	}

	return &usecase.RefreshOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes the session identified by the refresh token.
func (srv *accountService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		// Even if the token is invalid, proceed to delete its record.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Session already gone; logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshTokenRepo.Delete(ctx, stored.ID); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile retrieves a profile by ID.
func (srv *accountService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile modifies the editable fields of the caller's own profile.
func (srv *accountService) UpdateProfile(ctx context.Context, profileID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile.FullName = input.FullName
	profile.OrganizationName = input.OrganizationName
	profile.Phone = input.Phone
	profile.Address = input.Address

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("profileID", profileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("profileID", profileID))

	return profile, nil
}
