package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourbook/config"
	"tourbook/infras/jwt"
	"tourbook/infras/otel"
	"tourbook/internal/domains/auth/model/dto"
	userDto "tourbook/internal/domains/user/model/dto"
	userRepo "tourbook/internal/domains/user/repository"
	"tourbook/shared/cache"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/password"
	"tourbook/shared/timezone"
	"tourbook/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheAuth    = "auth"
	cacheRevoked = "revoked"

	msgInvalidCredentials = "invalid email or password"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, authorization string, req dto.LogoutRequest) error
	Authenticate(ctx context.Context, authorization string) (*jwt.Claims, error)
	Session(ctx context.Context, authorization string) dto.SessionResponse
}

type serviceImpl struct {
	userRepo   userRepo.User
	cache      cache.RedisCache
	jwtService jwt.JWT
	cfg        *config.Config
	otel       otel.Otel
}

func New(userRepo userRepo.User, cache cache.RedisCache, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cache:      cache,
		jwtService: jwt,
		cfg:        cfg,
		otel:       otel,
	}
}

func revokedKey(tokenID string) string {
	return cache.BuildCacheKey(cacheAuth, cacheRevoked, tokenID)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user, ok := s.userRepo.GetByEmail(ctx, req.Email)
	if !ok {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Verify(req.Password, user.PasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	var usuario userDto.UserResponse
	usuario.FromModel(user)

	res.FromTokenPair(tokenPair)
	res.Usuario = &usuario

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	if s.isRevoked(ctx, claims.TokenID) {
		return res, failure.Unauthorized("refresh token has been revoked")
	}

	if _, ok := s.userRepo.Get(ctx, claims.UserID); !ok {
		return res, failure.Unauthorized("account no longer exists")
	}

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	// A refresh token is single use.
	_ = s.revoke(ctx, claims)

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout revokes the access token and, when given, the refresh token until they expire.
func (s *serviceImpl) Logout(ctx context.Context, authorization string, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.Authenticate(ctx, authorization)
	if err != nil {
		return err
	}

	if err = s.revoke(ctx, claims); err != nil {
		return err
	}

	if req.RefreshToken == constant.Empty {
		return nil
	}

	refreshClaims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("logout with an invalid refresh token")

		return nil
	}

	return s.revoke(ctx, refreshClaims)
}

// Authenticate resolves a bearer Authorization header into access token claims.
func (s *serviceImpl) Authenticate(ctx context.Context, authorization string) (*jwt.Claims, error) {
	tokenString, err := jwt.ExtractTokenFromHeader(authorization)
	if err != nil {
		if errors.Is(err, jwt.ErrMissingHeader) {
			return nil, failure.Unauthorized("Missing authorization header")
		}

		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := s.jwtService.ValidateToken(tokenString, jwt.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			return nil, failure.Unauthorized("Token has expired")
		case errors.Is(err, jwt.ErrInvalidClaim):
			return nil, failure.Unauthorized("Invalid token claims")
		default:
			return nil, failure.Unauthorized("Invalid token")
		}
	}

	if s.isRevoked(ctx, claims.TokenID) {
		return nil, failure.Unauthorized("Token has been revoked")
	}

	return claims, nil
}

func (s *serviceImpl) Session(ctx context.Context, authorization string) dto.SessionResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Session")
	defer scope.End()

	claims, err := s.Authenticate(ctx, authorization)
	if err != nil {
		return dto.SessionResponse{}
	}

	user, ok := s.userRepo.Get(ctx, claims.UserID)
	if !ok {
		return dto.SessionResponse{}
	}

	var usuario userDto.UserResponse
	usuario.FromModel(user)

	return dto.SessionResponse{Autenticado: true, Usuario: &usuario}
}

// isRevoked reports false when the cache cannot be reached.
func (s *serviceImpl) isRevoked(ctx context.Context, tokenID string) bool {
	revoked, err := s.cache.Exists(ctx, revokedKey(tokenID))
	if err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to check token revocation")

		return false
	}

	return revoked
}

func (s *serviceImpl) revoke(ctx context.Context, claims *jwt.Claims) error {
	ttl := s.jwtService.AccessLifetime()
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(timezone.Now())
	}

	seconds := int(ttl / time.Second)
	if seconds <= 0 {
		return nil
	}

	if err := s.cache.Save(ctx, revokedKey(claims.TokenID), claims.UserID, seconds); err != nil {
		log.Error().Err(err).Str("token_id", claims.TokenID).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
