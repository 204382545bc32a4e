package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/domain/entity"
)

// dummyHash is a bcrypt digest compared against when no user matches the
// login email, so that unknown-user and wrong-password logins perform the
// same amount of work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// store's unique index rejects the email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer issues signed bearer tokens asserting a user's identity claims.
type TokenIssuer interface {
	GenerateToken(userID uint, email string) (string, error)
}

// AuthUsecase implements the signup and login flows.
type AuthUsecase struct {
	users   UserRepository
	tokens  TokenIssuer
	timeout time.Duration
}

// NewAuthUsecase creates a new AuthUsecase. queryTimeout bounds every store
// call; zero disables the bound.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, queryTimeout time.Duration) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, timeout: queryTimeout}
}

func (u *AuthUsecase) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.timeout)
}

// Signup registers a new user with a hashed password and returns the created
// user with the password hash cleared. A duplicate email surfaces as
// ErrEmailAlreadyExists with no state mutated.
func (u *AuthUsecase) Signup(ctx context.Context, name, email, password string, age *int) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed), Age: age}

	ctx, cancel := u.storeCtx(ctx)
	defer cancel()
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return sanitize(user), nil
}

// Login authenticates a user and returns the user (without the password hash)
// and a signed token. Unknown email and wrong password both yield
// ErrInvalidCredentials; a bcrypt comparison runs in either case to keep the
// timing of the two failures indistinguishable.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	ctx, cancel := u.storeCtx(ctx)
	defer cancel()

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return sanitize(user), token, nil
}

// sanitize returns a copy of the user safe to hand to the transport layer.
// The entity also carries `json:"-"` on Password, but the hash should not
// leave this package at all.
func sanitize(user *entity.User) *entity.User {
	out := *user
	out.Password = ""
	return &out
}
