package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inflybi/warehouse/internal/auth"
)

const testSecret = "test-secret"

func TestService_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret, time.Minute)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
			Return(nil, auth.ErrNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				assert.Equal(t, "Maria", u.Nome)
				assert.Equal(t, "maria@example.com", u.Email)
				assert.NotEqual(t, uuid.Nil, u.ID)
				assert.NotEqual(t, "s3cret", u.SenhaHash)

				return nil
			})

		user, err := svc.Register(context.Background(), auth.RegisterParams{
			Nome:  "Maria",
			Email: "maria@example.com",
			Senha: "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", user.Email)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret, time.Minute)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
			Return(&auth.User{Email: "maria@example.com"}, nil)

		_, err := svc.Register(context.Background(), auth.RegisterParams{
			Nome:  "Maria",
			Email: "maria@example.com",
			Senha: "s3cret",
		})
		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})
}

func TestService_LoginAndVerifyToken(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	user := &auth.User{Email: "maria@example.com", SenhaHash: hash}

	t.Run("Roundtrip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret, time.Minute)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
			Return(user, nil)

		token, err := svc.Login(context.Background(), "maria@example.com", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		sub, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", sub)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret, time.Minute)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
			Return(user, nil)

		_, err := svc.Login(context.Background(), "maria@example.com", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret, time.Minute)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, auth.ErrNotFound)

		_, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret, -time.Minute)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
			Return(user, nil)

		token, err := svc.Login(context.Background(), "maria@example.com", "s3cret")
		require.NoError(t, err)

		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret, time.Minute)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
			Return(user, nil)

		token, err := svc.Login(context.Background(), "maria@example.com", "s3cret")
		require.NoError(t, err)

		other := auth.NewService(repo, "another-secret", time.Minute)
		_, err = other.VerifyToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		svc := auth.NewService(nil, testSecret, time.Minute)

		_, err := svc.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
