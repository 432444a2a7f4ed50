// Package services contains the auth core: stateless orchestration of the
// password hasher, token issuer and credential store.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/mkravets/biogate/internal/common"
	"github.com/mkravets/biogate/internal/server/auth"
	"github.com/mkravets/biogate/internal/server/config"
	"github.com/mkravets/biogate/internal/server/models"
	"github.com/mkravets/biogate/internal/server/password"
	"github.com/mkravets/biogate/internal/server/repositories/biometrics"
	"github.com/mkravets/biogate/internal/server/repositories/users"
)

type AuthService struct {
	users                 users.Repository
	biometrics            biometrics.Repository
	hasher                *password.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewAuthService(ur users.Repository, br biometrics.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		users:                 ur,
		biometrics:            br,
		hasher:                password.NewHasher(cfg.BcryptCost),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
}

func (s *AuthService) authResult(user *models.User) (*models.AuthResult, error) {
	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &models.AuthResult{User: user.Public(), Token: token}, nil
}

// Register creates a new account and returns it with a freshly minted
// token. A duplicate email fails with common.ErrorAlreadyExists, whether
// caught by the lookup or by the store's unique constraint on a concurrent
// register.
func (s *AuthService) Register(ctx context.Context, email, plaintext, name string) (*models.AuthResult, error) {

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash([]byte(plaintext))
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return s.authResult(user)
}

// Login authenticates by email and password. An unknown email fails with
// common.ErrorNotFound, a wrong password with common.ErrorUnauthorized.
// The two outcomes stay distinguishable to callers; the HTTP layer maps
// them as-is.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*models.AuthResult, error) {

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify([]byte(plaintext), user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return s.authResult(user)
}

// BiometricLogin authenticates by a single finger key. A key matching no
// record, or a record without a resolvable owner, fails with
// common.ErrorUnauthorized.
func (s *AuthService) BiometricLogin(ctx context.Context, key string) (*models.AuthResult, error) {

	b, err := s.biometrics.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if b.Owner == nil {
		return nil, common.ErrorUnauthorized
	}

	return s.authResult(b.Owner)
}

// SetBiometric enrolls the caller's ten finger keys. The uniqueness check
// is global, not scoped to userID: any key already enrolled anywhere fails
// with common.ErrorConflict and no partial record is created. There is no
// update path.
func (s *AuthService) SetBiometric(ctx context.Context, userID string, keys models.BiometricKeys) (*models.AuthResult, error) {

	exists, err := s.biometrics.ExistsAnyKey(ctx, keys)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if exists {
		return nil, common.ErrorConflict
	}

	b, err := s.biometrics.Create(ctx, userID, keys)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, common.ErrorInternal
	}

	if b.Owner == nil {
		return nil, common.ErrorInternal
	}

	return s.authResult(b.Owner)
}
