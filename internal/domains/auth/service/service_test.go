package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rathh/infras/jwt"
	jwtMocks "rathh/infras/jwt/mocks"
	otelMocks "rathh/infras/otel/mocks"
	"rathh/internal/domains/auth/model/dto"
	"rathh/internal/domains/auth/service"
	"rathh/shared/failure"
)

func TestAuthService_Login(t *testing.T) {
	t.Run("issues a token pair for the derived client identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockJWT.EXPECT().
			GenerateTokenPair(gomock.Any(), "ananya@example.com").
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)

		svc := service.New(otelMocks.NewOtel(), mockJWT)

		res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "Ananya@Example.com"})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ClientID)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("same email always maps to the same client id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJWT := jwtMocks.NewMockJWT(ctrl)

		pair := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
		mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(pair, nil).Times(2)

		svc := service.New(otelMocks.NewOtel(), mockJWT)

		first, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ananya@example.com"})
		assert.NoError(t, err)

		second, err := svc.Login(context.Background(), dto.LoginRequest{Email: " ANANYA@example.com "})
		assert.NoError(t, err)

		assert.Equal(t, first.ClientID, second.ClientID)
	})

	t.Run("token generation failure surfaces as an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockJWT.EXPECT().
			GenerateTokenPair(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("signing failed"))

		svc := service.New(otelMocks.NewOtel(), mockJWT)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ananya@example.com"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates the token pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockJWT.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		svc := service.New(otelMocks.NewOtel(), mockJWT)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("rejected refresh token is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockJWT.EXPECT().
			RefreshTokens(gomock.Any()).
			Return(nil, errors.New("token expired"))

		svc := service.New(otelMocks.NewOtel(), mockJWT)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
