package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "powerhack/backend/internal/domain/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 6

// dummyHash is a fixed bcrypt hash (cost 10) compared against when a login
// names an unknown email, so that the unknown-email and wrong-password paths
// have the same latency distribution.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service coordinates authentication workflows between domain and
// infrastructure. It holds no per-request state; independent requests need
// no coordination.
type Service struct {
	users   domain.UserRepository
	tokens  TokenManager
	logger  *zap.Logger
	nowFunc func() time.Time
}

// NewService constructs an auth service.
func NewService(logger *zap.Logger, users domain.UserRepository, tokens TokenManager) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:   users,
		tokens:  tokens,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Register validates the input, hashes the password with bcrypt (cost 10,
// deliberately slow) and persists the user. Uniqueness of the email is left
// entirely to the store: there is no pre-insert lookup, so concurrent
// registrations with the same email race safely and the loser observes
// domain.ErrEmailExists.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return domain.ErrInvalidUsername
	}
	if password == "" {
		return domain.ErrInvalidPassword
	}
	if len(password) < MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    s.nowFunc().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.String("email", email))
	return nil
}

// Login verifies the credentials and issues a signed bearer token asserting
// the email. Unknown email and wrong password both yield the identical
// domain.ErrInvalidCredentials; the unknown-email path still runs a bcrypt
// comparison so the two failures cannot be told apart by timing.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))
	password := creds.Password
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}

// VerifyToken validates a bearer token and returns the email it asserts.
func (s *Service) VerifyToken(token string) (string, error) {
	return s.tokens.Validate(token)
}
