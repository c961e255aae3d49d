package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectUserTransaction runs the transaction callback against txUserRepo.
func (fx userServiceFixtures) expectUserTransaction(t *testing.T, txUserRepo *mockRepo.MockUserRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			return fn(mockFactory)
		})
}

func testTokenPair() *service.TokenPair {
	return &service.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:     "  Jane@Example.com ",
		Password:  "Password123!",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectUserTransaction(t, txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleClient, user.Role)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("*entity.User")).Return(testTokenPair(), nil)

	result, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, "jane@example.com", result.User.Email)
	assert.Equal(t, entity.RoleClient, result.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "jane@example.com", Password: "Password123!"}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectUserTransaction(t, txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	result, err := fx.service.Register(ctx, input)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_UniqueViolationOnInsert(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "jane@example.com", Password: "Password123!"}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectUserTransaction(t, txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	result, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Email:    "jane@example.com",
		Password: "short",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed", Role: entity.RoleAdmin}

	tests := []struct {
		name        string
		password    string
		setup       func(fx userServiceFixtures, ctx context.Context)
		expectedErr error
	}{
		{
			name:     "valid credentials",
			password: "Password123!",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
				fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
				fx.tokenService.EXPECT().GenerateTokens(user).Return(testTokenPair(), nil)
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
				fx.hasher.EXPECT().Check("nope", "hashed").Return(false)
			},
			expectedErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "Password123!",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(nil, repository.ErrUserNotFound)
			},
			expectedErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:     "repository failure",
			password: "Password123!",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(nil, errors.New("connection reset"))
			},
			expectedErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: tt.password})

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, result)
				if appErr, ok := tt.expectedErr.(*domainerrors.BaseError); ok {
					assert.ErrorIs(t, err, appErr)
				} else {
					assert.Contains(t, err.Error(), tt.expectedErr.Error())
				}

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.RoleAdmin, result.Role)
			assert.Equal(t, user.ID, result.User.ID)
		})
	}
}

func TestUserService_RefreshToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "jane@example.com", Role: entity.RoleClient}

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&entity.Identity{UserID: user.ID, Role: user.Role}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateTokens(user).Return(testTokenPair(), nil)

		result, err := fx.service.RefreshToken(ctx, "refresh")

		require.NoError(t, err)
		assert.Equal(t, "access-token", result.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("bogus").Return(nil, errors.New("token is expired"))

		_, err := fx.service.RefreshToken(context.Background(), "bogus")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("user deleted since issue", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		userID := uuid.New()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&entity.Identity{UserID: userID, Role: entity.RoleClient}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshToken(ctx, "refresh")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", FirstName: "Jane", PasswordHash: "secret"}
	missing := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	summary, err := fx.service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.UserSummary{ID: user.ID, Email: user.Email, FirstName: "Jane"}, summary)

	_, err = fx.service.GetProfile(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "b@example.com"},
		{ID: uuid.New(), Email: "a@example.com"},
	}

	fx.userRepo.EXPECT().List(ctx, repository.Page{Number: 2, Limit: 2}).Return(users, int64(5), nil)

	result, err := fx.service.ListUsers(ctx, usecase.PageRequest{Page: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, result.Users, 2)
	assert.Equal(t, "b@example.com", result.Users[0].Email)
	assert.Equal(t, usecase.Pagination{Page: 2, Limit: 2, Total: 5, TotalPages: 3}, result.Pagination)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Run("creates missing administrator", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		txUserRepo := mockRepo.NewMockUserRepository(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("admin-secret").Return("hashed_admin", nil)
		fx.expectUserTransaction(t, txUserRepo)
		txUserRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound)
		txUserRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
				return user.Role == entity.RoleAdmin && user.FirstName == "Store" && user.PasswordHash == "hashed_admin"
			})).
			Return(nil)

		require.NoError(t, fx.service.EnsureAdmin(ctx))
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		fx.userRepo.EXPECT().
			FindByEmail(ctx, "admin@example.com").
			Return(&entity.User{ID: uuid.New(), Role: entity.RoleAdmin}, nil)

		require.NoError(t, fx.service.EnsureAdmin(ctx))
		fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("no administrator configured", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Admin = nil

		service := NewUserService(UserServiceParams{
			TxManager:    mockRepo.NewMockTransactionManager(t),
			UserRepo:     mockRepo.NewMockUserRepository(t),
			Hasher:       mockSvc.NewMockPasswordHasher(t),
			TokenService: mockSvc.NewMockTokenService(t),
			Config:       cfg,
			Logger:       newDiscardLogger(),
		})

		require.NoError(t, service.EnsureAdmin(context.Background()))
	})
}
