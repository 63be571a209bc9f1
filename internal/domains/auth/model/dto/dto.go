package dto

import (
	"tourbook/infras/jwt"
	userDto "tourbook/internal/domains/user/model/dto"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest optionally carries the refresh token so it is revoked too.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LoginResponse struct {
	AccessToken  string                `json:"accessToken"`
	RefreshToken string                `json:"refreshToken"`
	TokenType    string                `json:"tokenType"`
	ExpiresIn    int64                 `json:"expiresIn"`
	Usuario      *userDto.UserResponse `json:"usuario,omitempty"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

// SessionResponse is what the admin route guard consumes.
type SessionResponse struct {
	Autenticado bool                  `json:"autenticado"`
	Usuario     *userDto.UserResponse `json:"usuario,omitempty"`
}
