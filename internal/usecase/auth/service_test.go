package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domuser "example.com/food-ordering/app/internal/domain/user"
)

type mockUserRepository struct {
	byEmail map[string]*domuser.User
	nextID  int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{byEmail: make(map[string]*domuser.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	if _, ok := m.byEmail[u.Email]; ok {
		return nil, domuser.ErrEmailAlreadyUsed
	}
	m.nextID++
	u.ID = m.nextID
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domuser.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	return u, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakeHasher) Compare(hash string, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateToken(u *domuser.User) (string, error) {
	return "token-for-" + u.Email, nil
}

func (fakeTokens) ParseToken(token string) (*Claims, error) {
	return nil, errors.New("not implemented")
}

func newTestService() (*Service, *mockUserRepository) {
	repo := newMockUserRepository()
	return NewService(repo, fakeHasher{}, fakeTokens{}), repo
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:           "Alice@Example.com",
		Password:        "secret-pass",
		ConfirmPassword: "secret-pass",
		DeliveryAddress: "123 Main St",
	})

	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email, "email is normalized")
	require.Equal(t, "hash:secret-pass", u.PasswordHash)
	require.Equal(t, "123 Main St", u.Profile.Address())
	require.Empty(t, u.Profile.OrderHistory())
}

func TestRegister_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:    "no at sign",
			input:   RegisterInput{Email: "alice.example.com", Password: "secret-pass", ConfirmPassword: "secret-pass"},
			wantErr: domuser.ErrInvalidEmail,
		},
		{
			name:    "no domain dot",
			input:   RegisterInput{Email: "alice@example", Password: "secret-pass", ConfirmPassword: "secret-pass"},
			wantErr: domuser.ErrInvalidEmail,
		},
		{
			name:    "empty email",
			input:   RegisterInput{Email: "", Password: "secret-pass", ConfirmPassword: "secret-pass"},
			wantErr: domuser.ErrInvalidEmail,
		},
		{
			name:    "short password",
			input:   RegisterInput{Email: "alice@example.com", Password: "short", ConfirmPassword: "short"},
			wantErr: domuser.ErrWeakPassword,
		},
		{
			name:    "confirmation mismatch",
			input:   RegisterInput{Email: "alice@example.com", Password: "secret-pass", ConfirmPassword: "other-pass"},
			wantErr: domuser.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()

			_, err := svc.Register(context.Background(), tt.input)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:           "alice@example.com",
		Password:        "secret-pass",
		ConfirmPassword: "secret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{
		Email:           "alice@example.com",
		Password:        "other-pass1",
		ConfirmPassword: "other-pass1",
	})
	require.ErrorIs(t, err, domuser.ErrEmailAlreadyUsed)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register(context.Background(), RegisterInput{
		Email:           "alice@example.com",
		Password:        "secret-pass",
		ConfirmPassword: "secret-pass",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "secret-pass",
	})

	require.NoError(t, err)
	require.Equal(t, "token-for-alice@example.com", result.Token)
	require.Equal(t, "alice@example.com", result.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register(context.Background(), RegisterInput{
		Email:           "alice@example.com",
		Password:        "secret-pass",
		ConfirmPassword: "secret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	require.ErrorIs(t, err, domuser.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	require.ErrorIs(t, err, domuser.ErrUnauthorized)
}

func TestLogin_BlankCredential(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), LoginInput{Email: "", Password: ""})

	require.ErrorIs(t, err, domuser.ErrInvalidCredential)
}
