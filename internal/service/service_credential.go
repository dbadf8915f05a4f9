// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mshakirov/go-journal-keeper/internal/config"
	"github.com/mshakirov/go-journal-keeper/internal/crypto"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/store"
	"github.com/mshakirov/go-journal-keeper/internal/utils"
	"github.com/mshakirov/go-journal-keeper/models"
)

// minPasswordLength is the minimum accepted journal password length,
// counted in runes so multibyte characters each count once.
const minPasswordLength = 6

// credentialService is the concrete implementation of CredentialService.
// It handles journal password setup and verification, hashing passwords
// with Argon2id and issuing scope-restricted unlock tokens.
type credentialService struct {
	// credentialRepository is the data-access layer for the per-owner
	// journal password record.
	credentialRepository store.CredentialRepository

	// hasher produces and verifies encoded Argon2id password hashes.
	hasher crypto.PasswordHasher

	// unlockSignKey is the HMAC secret used to sign unlock tokens. It is
	// distinct from the platform session key so a session token can never
	// pass the journal gate.
	unlockSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued unlock token.
	tokenIssuer string

	// unlockDuration controls how long an issued unlock token remains valid.
	unlockDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService wired to the given
// repository and hasher, with token parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCredentialService(credentialRepository store.CredentialRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		hasher:               hasher,
		unlockSignKey:        cfg.UnlockSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		unlockDuration:       cfg.UnlockDuration,
		logger:               logger,
	}
}

// HasCredential reports whether the owner has already set a journal password.
// A missing credential row is a normal answer, not an error.
func (c *credentialService) HasCredential(ctx context.Context, ownerID int64) (bool, error) {
	log := logger.FromContext(ctx)

	_, err := c.credentialRepository.GetCredential(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return false, nil
		}
		log.Err(err).Int64("owner_id", ownerID).Msg("credential lookup failed")
		return false, fmt.Errorf("credential lookup failed: %w", err)
	}

	return true, nil
}

// CreateCredential sets the journal password for the owner.
//
// The password must be at least six characters; it is stored only as an
// encoded Argon2id hash. On success an unlock token is issued so the journal
// is open immediately after setup.
//
// Returns:
//   - ErrWeakPassword if the password is shorter than the minimum.
//   - A wrapped store.ErrCredentialAlreadyExists if a credential is already
//     set; the existing hash is never overwritten.
func (c *credentialService) CreateCredential(ctx context.Context, ownerID int64, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if utf8.RuneCountInString(password) < minPasswordLength {
		log.Warn().Int64("owner_id", ownerID).Msg("journal password rejected: too short")
		return models.Token{}, ErrWeakPassword
	}

	passwordHash, err := c.hasher.Hash(password)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = c.credentialRepository.CreateCredential(ctx, models.JournalCredential{
		OwnerID:      ownerID,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("credential creation ended with error")
		return models.Token{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	return c.issueUnlockToken(ctx, ownerID)
}

// VerifyCredential checks the supplied password against the stored hash.
//
// Wrong password and missing credential are deliberately indistinguishable:
// both return (zero token, false, nil). Only infrastructure failures produce
// a non-nil error.
func (c *credentialService) VerifyCredential(ctx context.Context, ownerID int64, password string) (models.Token, bool, error) {
	log := logger.FromContext(ctx)

	credential, err := c.credentialRepository.GetCredential(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return models.Token{}, false, nil
		}
		log.Err(err).Int64("owner_id", ownerID).Msg("credential lookup failed")
		return models.Token{}, false, fmt.Errorf("credential lookup failed: %w", err)
	}

	valid, err := c.hasher.Verify(password, credential.PasswordHash)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("password verification failed")
		return models.Token{}, false, fmt.Errorf("password verification failed: %w", err)
	}

	if !valid {
		log.Warn().Int64("owner_id", ownerID).Msg("journal password mismatch")
		return models.Token{}, false, nil
	}

	token, err := c.issueUnlockToken(ctx, ownerID)
	if err != nil {
		return models.Token{}, false, err
	}

	return token, true, nil
}

func (c *credentialService) issueUnlockToken(ctx context.Context, ownerID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(c.tokenIssuer, ownerID, models.ScopeJournalUnlock, c.unlockDuration, c.unlockSignKey)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("unlock token generation failed")
		return models.Token{}, fmt.Errorf("unlock token generation failed: %w", err)
	}

	return token, nil
}
