package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrMissingRequiredFields = errors.New("email, password, firstName and lastName are required")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrMissingCredentials    = errors.New("username and password are required")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, userID uuid.UUID, firstName, lastName, avatarURL *string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles registration, login and profile updates.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register registers a new user and returns its public projection and a token.
// Username defaults to the local part of the email when not supplied.
func (svc *AuthService) Register(ctx context.Context, email, password, firstName, lastName, username string) (*models.User, string, error) {
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, "", ErrMissingRequiredFields
	}
	if !emailPattern.MatchString(email) {
		return nil, "", ErrInvalidEmail
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user.Public(), token, nil
}

// Login authenticates a user and returns its public projection and a token.
// The username field is matched against the email column: the login
// identifier is always an email address regardless of the field name.
// Unknown email and wrong password collapse into the same error so callers
// cannot enumerate users.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := svc.reader.GetByEmail(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", username)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user.Public(), token, nil
}

// UpdateUser applies a partial profile update and returns the updated projection.
func (svc *AuthService) UpdateUser(ctx context.Context, userID uuid.UUID, firstName, lastName, avatarURL *string) (*models.User, error) {
	user, err := svc.writer.Update(ctx, userID, firstName, lastName, avatarURL)
	if err != nil {
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user.Public(), nil
}
