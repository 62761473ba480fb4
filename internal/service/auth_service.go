package service

import (
	"context"
	"time"

	"notesapi/internal/model"
	appErr "notesapi/internal/pkg/errors"
	"notesapi/internal/pkg/jwt"
	"notesapi/internal/pkg/password"
	"notesapi/internal/pkg/timeutil"
	"notesapi/internal/repo"
	"notesapi/internal/revoke"
)

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthService struct {
	users       *repo.UserRepo
	revocations *revoke.Store
	jwtSecret   []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthService(users *repo.UserRepo, revocations *revoke.Store, secret []byte, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		revocations: revocations,
		jwtSecret:   secret,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

func (s *AuthService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *AuthService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *AuthService) Register(ctx context.Context, username, plainPassword string) (*model.User, error) {
	now := timeutil.NowUnixMilli()
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:           newID(),
		Username:     username,
		PasswordHash: hash,
		Ctime:        now,
		Mtime:        now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*model.User, *TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, appErr.ErrUnauthorized
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, nil, appErr.ErrUnauthorized
	}
	access, err := jwt.GenerateToken(user.ID, jwt.TokenTypeAccess, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := jwt.GenerateToken(user.ID, jwt.TokenTypeRefresh, s.jwtSecret, s.refreshTTL)
	if err != nil {
		return nil, nil, err
	}
	return user, &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh validates a refresh token and mints a fresh access token.
// The refresh token itself is left alone, it stays valid until expiry
// or logout.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := jwt.ParseTokenOfType(refreshToken, jwt.TokenTypeRefresh, s.jwtSecret)
	if err != nil {
		return "", appErr.ErrUnauthorized
	}
	if s.revocations != nil && s.revocations.IsRevoked(ctx, claims.ID) {
		return "", appErr.ErrUnauthorized
	}
	access, err := jwt.GenerateToken(claims.UserID, jwt.TokenTypeAccess, s.jwtSecret, s.accessTTL)
	if err != nil {
		return "", appErr.ErrInternal
	}
	return access, nil
}

// RevokeToken is best-effort logout hardening: tokens that fail to
// parse are simply skipped, logout succeeds regardless.
func (s *AuthService) RevokeToken(ctx context.Context, tokenString string) {
	if s.revocations == nil || tokenString == "" {
		return
	}
	claims, err := jwt.ParseToken(tokenString, s.jwtSecret)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return
	}
	_ = s.revocations.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time)
}
