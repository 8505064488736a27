// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, credential verification, issuing
// and refreshing JWTs, and logout via the injected revocation list.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/dbx"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService provides the authentication use cases:
//   - Register: create users
//   - Login: verify credentials and mint a token pair
//   - Refresh: mint a new access token from a valid refresh token
//   - Logout: revoke the presented access token
//   - Authorize: the gate applied before every protected operation
//
// Known limitation, kept deliberately: Refresh does not rotate the refresh
// token and Logout revokes only the presented access token, so a leaked
// refresh token stays valid until its natural expiry.
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	revocations                  *auth.RevocationList
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
}

// NewAuthService constructs an AuthService using repositories, the shared
// revocation list, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, revocations *auth.RevocationList, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		revocations:                  revocations,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		bcryptCost:                   cfg.BcryptCost,
	}
}

// Register creates a new user and returns its public projection. The
// plaintext password is hashed immediately and never stored or logged.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.PublicUser, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorInvalidInput
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		user, txErr = s.repomanager.Users(tx).Create(ctx, &models.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		})
		return txErr
	})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateCredential) {
			return nil, common.ErrorDuplicateCredential
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	public := user.Public()
	return &public, nil
}

// Login verifies the email/password pair and, on success, returns a fresh
// token pair plus the user's public projection. An unknown email and a wrong
// password yield the same error so account existence does not leak.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, *models.PublicUser, error) {
	if email == "" || password == "" {
		return nil, nil, common.ErrorInvalidInput
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorInvalidCredentials
		}
		return nil, nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil, common.ErrorInvalidCredentials
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	public := user.Public()
	return pair, &public, nil
}

// Refresh verifies the refresh token (signature, expiry, kind, revocation)
// and mints a new access token with a fresh issuance and expiry. The refresh
// token itself is left untouched.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ParseToken(refreshToken, auth.TokenKindRefresh, s.jwtSecret)
	if err != nil {
		return "", common.ErrorInvalidToken
	}

	if s.revocations.IsRevoked(refreshToken) {
		return "", common.ErrorInvalidToken
	}

	access, err := auth.GenerateToken(claims.UserID(), claims.Email,
		auth.TokenKindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return access, nil
}

// Authorize is the gate in front of every protected operation: it verifies
// signature and expiry, then checks revocation. Both failure modes surface
// as the same ErrorUnauthenticated; a revoked token is indistinguishable
// from an expired one for the caller.
func (s *AuthService) Authorize(ctx context.Context, tokenString string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(tokenString, auth.TokenKindAccess, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthenticated
	}

	if s.revocations.IsRevoked(tokenString) {
		return nil, common.ErrorUnauthenticated
	}

	return claims, nil
}

// Logout revokes the exact presented access token. Logging out a token that
// is already revoked is a no-op success.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := auth.ParseToken(tokenString, auth.TokenKindAccess, s.jwtSecret)
	if err != nil {
		return common.ErrorUnauthenticated
	}

	s.revocations.Revoke(tokenString, claims.ExpiresAt.Time)
	return nil
}

// GetProfile returns the public projection of an authenticated subject. The
// store stays authoritative: a missing record yields ErrorNotFound even for
// a validly signed token.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.PublicUser, error) {
	return s.GetUserByID(ctx, userID)
}

// GetUserByID returns the public projection of the user with the given id.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	public := user.Public()
	return &public, nil
}

// ListUsers returns public projections of all users, newest first.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)
	list, err := repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	result := make([]models.PublicUser, 0, len(list))
	for _, user := range list {
		result = append(result, user.Public())
	}
	return result, nil
}

// withTx runs fn inside a transaction when a SQL database is configured.
// Backends without one (the in-memory repository) run fn directly.
func (s *AuthService) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, s.db)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

func (s *AuthService) generateTokenPair(user *models.User) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Email,
		auth.TokenKindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	refresh, err := auth.GenerateToken(user.ID, user.Email,
		auth.TokenKindRefresh, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
