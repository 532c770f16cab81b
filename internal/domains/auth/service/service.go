package service

import (
	"context"
	"fmt"
	"strings"

	"rathh/infras/jwt"
	"rathh/infras/otel"
	"rathh/internal/domains/auth/model/dto"
	"rathh/shared/constant"
	"rathh/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(otl otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		otel:       otl,
		jwtService: jwtService,
	}
}

// Login issues a token pair for the client identity derived from the email.
// The identity is deterministic so a returning client lands back on its own
// checkout and search slots.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	clientID := uuid.NewSHA1(uuid.NameSpaceURL, []byte(email)).String()

	tokenPair, err := s.jwtService.GenerateTokenPair(clientID, email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(clientID, tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
