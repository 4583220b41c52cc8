package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newAuthService(user *mockUserRepo, session *mockSessionRepo) AuthService {
	if user == nil {
		user = &mockUserRepo{}
	}
	if session == nil {
		session = &mockSessionRepo{}
	}
	repo := &repository.Repository{
		User:    user,
		Session: session,
	}
	config := &utils.Config{}
	config.Session.ExpiryHours = 24
	return NewAuthService(repo, config, testLogger())
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := utils.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()

	var createdUser *entity.User
	var createdSession *entity.Session
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, u *entity.User) error {
			createdUser = u
			return nil
		},
	}
	sessionRepo := &mockSessionRepo{
		createFn: func(ctx context.Context, s *entity.Session) error {
			createdSession = s
			return nil
		},
	}
	svc := newAuthService(userRepo, sessionRepo)

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Ivan Petrov",
		Email:    "ivan@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.NotNil(t, createdUser)
	require.Equal(t, entity.RoleCustomer, createdUser.Role)
	require.True(t, createdUser.IsActive)
	// never the plaintext
	require.NotEqual(t, "supersecret", createdUser.PasswordHash)
	require.True(t, utils.CheckPasswordHash("supersecret", createdUser.PasswordHash))

	// auto login after register
	require.NotNil(t, createdSession)
	require.Equal(t, createdUser.ID, createdSession.UserID)
	require.Equal(t, createdSession.Token.String(), resp.Token)
	require.True(t, createdSession.ExpiresAt.After(time.Now()))
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email}, nil
		},
	}
	svc := newAuthService(userRepo, nil)

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Ivan Petrov",
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrEmailTaken)
	require.Equal(t, apperr.CodeEmailTaken, apperr.Code(err))
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(nil, nil)

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "I",
		Email:    "not-an-email",
		Password: "123",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Ivan Petrov",
		Email:        "ivan@example.com",
		PasswordHash: mustHash(t, "supersecret"),
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			require.Equal(t, user.Email, email)
			return user, nil
		},
	}
	svc := newAuthService(userRepo, nil)

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "ivan@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), resp.UserID)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, entity.RoleCustomer, resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "ivan@example.com",
		PasswordHash: mustHash(t, "supersecret"),
		IsActive:     true,
	}

	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	svc := newAuthService(userRepo, nil)

	_, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrongpass",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrInvalidCreds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
	}
	svc := newAuthService(userRepo, nil)

	_, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)
	// same code as wrong password, no account enumeration
	require.Equal(t, apperr.CodeInvalidCreds, apperr.Code(err))
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "ivan@example.com",
		PasswordHash: mustHash(t, "supersecret"),
		IsActive:     false,
	}

	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	svc := newAuthService(userRepo, nil)

	_, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "ivan@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	token := uuid.NewString()

	var revoked string
	sessionRepo := &mockSessionRepo{
		revokeFn: func(ctx context.Context, tok string) error {
			revoked = tok
			return nil
		},
	}
	svc := newAuthService(nil, sessionRepo)

	require.NoError(t, svc.Logout(ctx, token))
	require.Equal(t, token, revoked)
}

func TestLogout_BadToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(nil, nil)

	err := svc.Logout(ctx, "not-a-uuid")
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrValidation)
}
