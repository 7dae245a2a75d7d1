package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/imobiflow/imobiflow-api/infrastructure/repository/mocks"
	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/pkg/apiErrors"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{
		App:       config.App{DemoEmail: "demo@imobiflow.com"},
		Auth:      config.Auth{TokenTTL: time.Hour},
		SecretKey: "chave-de-teste",
	}

	return NewService(repo, cfg).(*Service), repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "erro inesperado: %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{ID: 5, Email: "ana@imobiflow.com", PasswordHash: hashed(t, "segredo123"), Active: true, RoleID: domain.RoleAgent}
	}

	t.Run("gera token válido para credenciais corretas", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ana@imobiflow.com").Return(activeUser(t), nil)

		token, err := svc.LoginUser(ctx, "  Ana@Imobiflow.com ", "segredo123")
		require.NoError(t, err)

		session, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, &domain.Session{UserID: 5, Email: "ana@imobiflow.com", RoleID: domain.RoleAgent}, session)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ana@imobiflow.com").Return(activeUser(t), nil)

		_, err := svc.LoginUser(ctx, "ana@imobiflow.com", "errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assertAuthCode(t, err, apiErrors.ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("usuário inativo", func(t *testing.T) {
		svc, repo := newTestService(t)
		user := activeUser(t)
		user.Active = false
		repo.EXPECT().GetUserByEmail(ctx, "ana@imobiflow.com").Return(user, nil)

		_, err := svc.LoginUser(ctx, "ana@imobiflow.com", "segredo123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "x@y.com").Return(nil, nil)

		_, err := svc.LoginUser(ctx, "x@y.com", "segredo123")

		assertAuthCode(t, err, apiErrors.ErrUserNotFound)
	})

	t.Run("campos vazios", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.LoginUser(ctx, "", "")

		assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("erro de banco", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ana@imobiflow.com").Return(nil, errors.New("timeout"))

		_, err := svc.LoginUser(ctx, "ana@imobiflow.com", "segredo123")

		assertAuthCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}

func TestValidateToken(t *testing.T) {
	svc, _ := newTestService(t)
	user := &domain.User{ID: 1, Email: "admin@imobiflow.com", RoleID: domain.RoleAdmin}

	t.Run("token expirado", func(t *testing.T) {
		issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return issued }
		token, err := svc.generateJWT(user)
		require.NoError(t, err)

		svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assertAuthCode(t, err, apiErrors.ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("assinatura com outra chave", func(t *testing.T) {
		svc.now = time.Now
		other := &Service{secretKey: "outra-chave", tokenTTL: time.Hour, now: time.Now}
		token, err := other.generateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("texto qualquer", func(t *testing.T) {
		_, err := svc.ValidateToken("nao-e-um-jwt")

		assertAuthCode(t, err, apiErrors.ErrInvalidToken)
	})

	t.Run("sessão de administrador", func(t *testing.T) {
		svc.now = time.Now
		token, err := svc.generateJWT(user)
		require.NoError(t, err)

		session, err := svc.ValidateToken(token)

		require.NoError(t, err)
		assert.True(t, session.IsAdmin())
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("cadastra corretor inativo com senha criptografada", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "novo@imobiflow.com").Return(nil, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.False(t, u.Active)
			assert.Equal(t, domain.RoleAgent, u.RoleID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo123")))
			u.ID = 10
			return u, nil
		})

		created, err := svc.CreateUser(ctx, &domain.User{Name: "Novo", Email: " Novo@Imobiflow.com", PasswordHash: "segredo123"})

		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.Empty(t, created.PasswordHash)
	})

	t.Run("e-mail de demonstração nasce ativo", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "demo@imobiflow.com").Return(nil, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			return u, nil
		})

		created, err := svc.CreateUser(ctx, &domain.User{Name: "Demo", Email: "demo@imobiflow.com", PasswordHash: "segredo123"})

		require.NoError(t, err)
		assert.True(t, created.Active)
	})

	t.Run("e-mail já cadastrado", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ana@imobiflow.com").Return(&domain.User{ID: 5}, nil)

		_, err := svc.CreateUser(ctx, &domain.User{Name: "Ana", Email: "ana@imobiflow.com", PasswordHash: "segredo123"})

		assertAuthCode(t, err, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("senha curta", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateUser(ctx, &domain.User{Name: "Ana", Email: "ana@imobiflow.com", PasswordHash: "123"})

		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("dados ausentes", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateUser(ctx, &domain.User{Email: "ana@imobiflow.com"})

		assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)
	})
}

func TestGetUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("remove o hash da senha", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5, PasswordHash: "hash"}, nil)

		user, err := svc.GetUserProfile(ctx, 5)

		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("não encontrado", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(ctx, 5).Return(nil, nil)

		_, err := svc.GetUserProfile(ctx, 5)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
