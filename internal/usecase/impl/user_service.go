// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	admin             config.AdminConfig
	defaultLimit      int
	maxLimit          int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minPasswordLength := constants.DefaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	var admin config.AdminConfig
	if params.Config != nil && params.Config.Admin != nil {
		admin = *params.Config.Admin
	}

	defaultLimit, maxLimit := pageLimits(params.Config)

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minPasswordLength,
		admin:             admin,
		defaultLimit:      defaultLimit,
		maxLimit:          maxLimit,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a CLIENT account and returns a fresh token pair.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	if utf8.RuneCountInString(input.Password) < srv.minPasswordLength {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email))

		return nil, domainerrors.ErrPasswordStrength
	}

	user := &entity.User{
		Email:     email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      entity.RoleClient,
	}
	if err := srv.createUser(ctx, user, input.Password); err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return srv.issueTokens(user)
}

// createUser hashes the password and inserts the user unless the email is taken.
func (srv *userService) createUser(ctx context.Context, user *entity.User, password string) error {
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hashedPassword

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, user.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		err = userRepo.Create(ctx, user)
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return domainerrors.ErrUserAlreadyExists
		}
		if err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
}

// Login verifies the credentials. Unknown emails and wrong passwords are indistinguishable.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// RefreshToken issues a new token pair for a valid refresh token.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthResult, error) {
	identity, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueTokens(user)
}

// GetProfile returns the public summary of a user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user.Summary(), nil
}

// ListUsers returns one page of user summaries, newest first.
func (srv *userService) ListUsers(ctx context.Context, page usecase.PageRequest) (*usecase.UserList, error) {
	number, limit := util.NormalizePage(page.Page, page.Limit, srv.defaultLimit, srv.maxLimit)

	users, total, err := srv.userRepo.List(ctx, repository.Page{Number: number, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]*entity.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}

	return &usecase.UserList{
		Users: summaries,
		Pagination: usecase.Pagination{
			Page:       number,
			Limit:      limit,
			Total:      total,
			TotalPages: util.TotalPages(total, limit),
		},
	}, nil
}

// EnsureAdmin seeds the configured administrator. An existing account with the same
// email is left untouched.
func (srv *userService) EnsureAdmin(ctx context.Context) error {
	email := normalizeEmail(srv.admin.Email)
	if email == "" || srv.admin.Password == "" {
		srv.logger.Debug("No administrator configured, skipping seed")

		return nil
	}

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			srv.logger.Warn("Configured administrator email belongs to a non-admin account", slog.String("email", email))
		}

		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up administrator")
	}

	admin := &entity.User{
		Email:     email,
		FirstName: srv.admin.FirstName,
		LastName:  srv.admin.LastName,
		Role:      entity.RoleAdmin,
	}
	if err := srv.createUser(ctx, admin, srv.admin.Password); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil
		}

		return errors.Wrap(err, "failed to seed administrator")
	}

	srv.logger.Info("Administrator account created", slog.String("userID", admin.ID.String()))

	return nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthResult, error) {
	tokens, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user.Summary(),
		Role:         user.Role,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
