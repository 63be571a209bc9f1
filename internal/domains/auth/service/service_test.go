package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tourbook/config"
	"tourbook/infras/jwt"
	otelMocks "tourbook/infras/otel/mocks"
	"tourbook/internal/domains/auth/model/dto"
	"tourbook/internal/domains/auth/service"
	userModel "tourbook/internal/domains/user/model"
	userRepo "tourbook/internal/domains/user/repository"
	cacheMocks "tourbook/shared/cache/mocks"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminPassword = "excursiones2024"

type fixture struct {
	svc   service.Auth
	jwt   jwt.JWT
	cache *cacheMocks.MockRedisCache
}

func setup(t *testing.T) fixture {
	t.Helper()

	hash, err := password.Hash(adminPassword)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "tourbook"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	ot := otelMocks.NewOtel()
	users := userRepo.NewWithUsers([]userModel.User{{
		ID:           userModel.AdminID,
		Email:        "admin@tourbook.mx",
		Name:         "Administrador",
		Role:         constant.RoleAdmin,
		PasswordHash: hash,
	}}, ot)

	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	jwtService := jwt.New(cfg)

	return fixture{
		svc:   service.New(users, redis, jwtService, cfg, ot),
		jwt:   jwtService,
		cache: redis,
	}
}

func bearer(token string) string {
	return "Bearer " + token
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.LoginRequest
		wantCode int
		wantMsg  string
	}{
		{
			name: "valid credentials with different email case",
			req:  dto.LoginRequest{Email: "Admin@Tourbook.mx", Password: adminPassword},
		},
		{
			name:     "wrong password",
			req:      dto.LoginRequest{Email: "admin@tourbook.mx", Password: "otra"},
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid email or password",
		},
		{
			name:     "unknown email",
			req:      dto.LoginRequest{Email: "nadie@tourbook.mx", Password: adminPassword},
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid email or password",
		},
		{
			name:     "malformed email",
			req:      dto.LoginRequest{Email: "admin", Password: adminPassword},
			wantCode: http.StatusBadRequest,
			wantMsg:  "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			got, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.AccessToken)
			assert.NotEmpty(t, got.RefreshToken)
			assert.Equal(t, int64(900), got.ExpiresIn)
			require.NotNil(t, got.Usuario)
			assert.Equal(t, userModel.AdminID, got.Usuario.ID)
			assert.Equal(t, constant.RoleAdmin, got.Usuario.Rol)
		})
	}
}

func login(t *testing.T, f fixture) dto.LoginResponse {
	t.Helper()

	res, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "admin@tourbook.mx", Password: adminPassword})
	require.NoError(t, err)

	return res
}

func TestAuthenticate(t *testing.T) {
	f := setup(t)
	res := login(t, f)
	ctx := context.Background()

	_, err := f.svc.Authenticate(ctx, "")
	assert.EqualError(t, err, "Missing authorization header")

	_, err = f.svc.Authenticate(ctx, "Token abc")
	assert.EqualError(t, err, "Invalid authorization header format")

	_, err = f.svc.Authenticate(ctx, bearer(res.RefreshToken))
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)

	claims, err := f.svc.Authenticate(ctx, bearer(res.AccessToken))
	require.NoError(t, err)
	assert.Equal(t, userModel.AdminID, claims.UserID)

	f.cache.EXPECT().Exists(gomock.Any(), "auth:revoked:"+claims.TokenID).Return(true, nil)

	_, err = f.svc.Authenticate(ctx, bearer(res.AccessToken))
	assert.EqualError(t, err, "Token has been revoked")

	f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

	_, err = f.svc.Authenticate(ctx, bearer(res.AccessToken))
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	f := setup(t)
	res := login(t, f)

	refreshClaims, err := f.jwt.ValidateToken(res.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)

	withinLifetime := func(max int) any {
		return gomock.Cond(func(seconds int) bool { return seconds > 0 && seconds <= max })
	}

	f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), userModel.AdminID, withinLifetime(15*60)).Return(nil)
	f.cache.EXPECT().Save(gomock.Any(), "auth:revoked:"+refreshClaims.TokenID, userModel.AdminID, withinLifetime(60*60)).Return(nil)

	err = f.svc.Logout(context.Background(), bearer(res.AccessToken), dto.LogoutRequest{RefreshToken: res.RefreshToken})
	assert.NoError(t, err)
}

func TestLogout_CacheFailure(t *testing.T) {
	f := setup(t)
	res := login(t, f)

	f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read only replica"))

	err := f.svc.Logout(context.Background(), bearer(res.AccessToken), dto.LogoutRequest{})
	assert.ErrorContains(t, err, "failed to revoke token")
}

func TestRefreshToken(t *testing.T) {
	f := setup(t)
	res := login(t, f)

	f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), userModel.AdminID, gomock.Any()).Return(nil)

	got, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: res.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)

	f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err = f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: res.RefreshToken})
	assert.EqualError(t, err, "refresh token has been revoked")

	_, err = f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: res.AccessToken})
	assert.EqualError(t, err, "invalid refresh token")

	_, err = f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{})
	assert.EqualError(t, err, "refreshToken is required")
}

func TestSession(t *testing.T) {
	f := setup(t)
	res := login(t, f)

	assert.Equal(t, dto.SessionResponse{}, f.svc.Session(context.Background(), ""))

	f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)

	got := f.svc.Session(context.Background(), bearer(res.AccessToken))
	assert.True(t, got.Autenticado)
	require.NotNil(t, got.Usuario)
	assert.Equal(t, "Administrador", got.Usuario.Nombre)
}
