package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput holds the data for a new customer account
type RegisterUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput holds the credentials of a login attempt
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned after register, login and refresh
type AuthResult struct {
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
	User         *entity.UserSummary `json:"user"`
	Role         entity.Role         `json:"role"`
}

// UserList is one page of user summaries.
type UserList struct {
	Users      []*entity.UserSummary `json:"users"`
	Pagination Pagination            `json:"pagination"`
}

// UserUsecase defines account and session use cases
type UserUsecase interface {
	// Register creates a customer account and signs it in.
	Register(ctx context.Context, input *RegisterUserInput) (*AuthResult, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)

	// GetProfile returns the public summary of a user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserSummary, error)

	// ListUsers returns one page of users, newest first.
	ListUsers(ctx context.Context, page PageRequest) (*UserList, error)

	// EnsureAdmin creates the configured administrator account when it does not exist.
	EnsureAdmin(ctx context.Context) error
}
