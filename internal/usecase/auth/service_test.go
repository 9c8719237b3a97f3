package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "powerhack/backend/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrEmailExists
	}
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	stored := *user
	return &stored, nil
}

type fakeTokenManager struct {
	generateErr error
}

func (f *fakeTokenManager) Generate(email string) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return "token-for-" + email, nil
}

func (f *fakeTokenManager) Validate(token string) (string, error) {
	email, ok := strings.CutPrefix(token, "token-for-")
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	return email, nil
}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(nil, repo, &fakeTokenManager{})
}

func TestRegister_ValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{name: "missing name", userName: "", email: "a@b.c", password: "secret1", wantErr: domain.ErrInvalidUsername},
		{name: "blank name", userName: "   ", email: "a@b.c", password: "secret1", wantErr: domain.ErrInvalidUsername},
		{name: "missing name wins over missing password", userName: "", email: "a@b.c", password: "", wantErr: domain.ErrInvalidUsername},
		{name: "missing password", userName: "Alice", email: "a@b.c", password: "", wantErr: domain.ErrInvalidPassword},
		{name: "short password", userName: "Alice", email: "a@b.c", password: "12345", wantErr: domain.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := newTestService(repo)

			err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.byEmail, "no record may be created on validation failure")
		})
	}
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22"))
	require.NoError(t, svc.Register(context.Background(), "Bob", "bob@example.com", "hunter22"))

	alice := repo.byEmail["alice@example.com"]
	bob := repo.byEmail["bob@example.com"]
	require.NotNil(t, alice)
	require.NotNil(t, bob)

	assert.NotEqual(t, "hunter22", alice.PasswordHash)
	assert.NotEqual(t, alice.PasswordHash, bob.PasswordHash, "bcrypt salting must differ per hash")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.PasswordHash), []byte("hunter22")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(bob.PasswordHash), []byte("hunter22")))
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.Register(context.Background(), "Alice", "  Alice@Example.COM ", "hunter22"))
	assert.Contains(t, repo.byEmail, "alice@example.com")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22"))
	err := svc.Register(context.Background(), "Imposter", "alice@example.com", "hunter23")
	require.ErrorIs(t, err, domain.ErrEmailExists)
	assert.Len(t, repo.byEmail, 1, "exactly one record must exist after the race")
}

func TestRegister_UnexpectedStoreErrorPropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("connection reset")
	svc := newTestService(repo)

	err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailExists)
	assert.EqualError(t, err, "connection reset")
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22"))

	token, err := svc.Login(context.Background(), domain.Credentials{Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice@example.com", token)

	email, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22"))

	_, wrongPassErr := svc.Login(context.Background(), domain.Credentials{Email: "alice@example.com", Password: "wrong-pass"})
	_, unknownEmailErr := svc.Login(context.Background(), domain.Credentials{Email: "nobody@example.com", Password: "hunter22"})

	require.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmailErr, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownEmailErr, "unknown email and wrong password must be the same error value")
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.Credentials{Email: "alice@example.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnexpectedStoreErrorPropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("connection reset")
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "alice@example.com", Password: "hunter22"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials, "store failures must not masquerade as auth failures")
}
