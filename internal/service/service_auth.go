package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-invoice/internal/config"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/store"
	"github.com/MKhiriev/go-invoice/internal/utils"
	"github.com/MKhiriev/go-invoice/internal/validators"
	"github.com/MKhiriev/go-invoice/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt over an
// HMAC-SHA256 pepper for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// idGenerator assigns identifiers to new users.
	idGenerator IDGenerator

	// validator checks signup and login payloads.
	validator validators.Validator

	// hashKey is the pepper mixed into every password hash. Must match the
	// value used at registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// comparePassword checks a password against a stored hash.
	comparePassword func(hash, password, hashKey string) error

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// dummyPasswordHash is compared against when the login email is unknown, so
// that both failure paths spend a bcrypt comparison.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, err := utils.HashPassword("go-invoice-unknown-user", "")
	if err != nil {
		panic(err)
	}
	return hash
})

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		idGenerator:     idGenerator,
		validator:       validators.NewUserValidator(),
		hashKey:         cfg.PasswordHashKey,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		comparePassword: utils.ComparePassword,
		logger:          logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is normalized before it is stored, and only the derived password
// hash is persisted. Uniqueness is left to the storage index so that two
// concurrent signups with the same email cannot both succeed.
//
// Returns the persisted user or:
//   - a validation error if a field is empty or the password is too short.
//   - [ErrEmailAlreadyRegistered] if the normalized email is taken.
//   - a storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid signup data provided")
		return models.User{}, validationError(err)
	}

	passwordHash, err := utils.HashPassword(request.Password, a.hashKey)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, storageError(err)
	}

	user := models.User{
		UserID:       a.idGenerator.Generate(),
		Name:         strings.TrimSpace(request.Name),
		Email:        models.NormalizeEmail(request.Email),
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", user.Email).Msg("email is already registered")
		return models.User{}, withCause(ErrEmailAlreadyRegistered, err)
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, storageError(err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.User{}, validationError(err)
	}

	email := models.NormalizeEmail(credentials.Email)
	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = a.comparePassword(dummyPasswordHash(), credentials.Password, a.hashKey)
		log.Debug().Str("email", email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, storageError(err)
	}

	err = a.comparePassword(foundUser.PasswordHash, credentials.Password, a.hashKey)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("user_id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, storageError(fmt.Errorf("%w: %w", ErrTokenCreationFailed, err))
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong signature, malformed)
// is normalised to [ErrTokenIsExpiredOrInvalid] so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, withCause(ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
