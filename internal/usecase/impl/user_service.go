// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"calshare/config"
	deliverycontext "calshare/internal/delivery/context"
	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/domain/service"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load login authentication")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, loggedInUser.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// Refresh rotates a session: it consumes the presented refresh token and
// issues a new pair. The stored record is matched by hash, so nothing in
// the database can be replayed.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	userID, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var output *usecase.RefreshOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return domainerrors.ErrInvalidRefreshToken.WrapMessage("session not found or expired")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != userID {
			return domainerrors.ErrInvalidRefreshToken.WrapMessage("session does not match token subject")
		}

		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to consume refresh token")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(userID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRecord := &entity.RefreshToken{
			UserID:    userID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRecord); err != nil {
			return errors.Wrap(err, "failed to store rotated refresh token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Session rotated", slog.Any("userID", userID))

	return output, nil
}

// Logout revokes the session behind the presented refresh token. An
// unknown token still logs out cleanly; the session it named is gone
// either way.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Logout failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// persistRefreshToken stores a new session record, enforcing the active
// session cap by rejecting logins past the limit.
func (srv *userService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if srv.maxActiveSessions > 0 {
			count, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if count >= srv.maxActiveSessions {
				return domainerrors.ErrValidationFailed.WrapMessage("active session limit reached")
			}
		}

		record := &entity.RefreshToken{
			UserID:    userID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		return refreshRepo.CreateRefreshToken(ctx, record)
	})
}
