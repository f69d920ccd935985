// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/gdps/internal/platform/apperr"
	"github.com/taibuivan/gdps/internal/platform/constants"
	"github.com/taibuivan/gdps/internal/platform/ctxutil"
	"github.com/taibuivan/gdps/internal/platform/sec"
	"github.com/taibuivan/gdps/internal/platform/validate"
	"github.com/taibuivan/gdps/internal/users/credential"
	"github.com/taibuivan/gdps/internal/users/profile"
)

// # Service Layer

// Service registers and authenticates accounts.
//
// It holds no per-call state; concurrent calls are safe as long as the
// [IDSource] is.
type Service struct {
	ids    IDSource
	logger *slog.Logger
	now    func() time.Time
}

// Option customises a [Service].
type Option func(*Service)

// WithClock overrides the clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(service *Service) {
		service.now = now
	}
}

// NewService constructs a new [Service] with its dependencies.
func NewService(ids IDSource, logger *slog.Logger, opts ...Option) *Service {
	service := &Service{
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// # Registration Flow

/*
Register validates the panel input and creates an account with a fresh
GJP2 generator.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: the new account
  - error: VALIDATION_ERROR listing every rejected field, or INTERNAL_ERROR
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {
	return service.RegisterWith(context, sec.NewGJP2Generator(nil), input)
}

/*
RegisterWith is [Service.Register] with a caller-owned generator, for batch
paths that keep one generator per worker.

The generator is single-owner: never share it between goroutines.
*/
func (service *Service) RegisterWith(context context.Context, generator *sec.GJP2Generator, input RegisterInput) (*Account, error) {
	logger := ctxutil.GetLogger(context, service.logger)

	name, password, email, err := parseCredentials(input)
	if err != nil {
		logger.Info("account_registration_rejected", slog.Int("rejected_fields", len(apperr.As(err).Details)))
		return nil, err
	}
	defer password.Wipe()

	// bcrypt is the expensive step; skip it if the caller already gave up.
	if err := context.Err(); err != nil {
		return nil, err
	}

	verifier, err := generator.Generate(password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("account_service_derive_failed: %w", err))
	}

	id, err := service.ids.NextID(context)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("account_service_next_id_failed: %w", err))
	}

	handles := profile.NewSocialMediaHandles(input.YouTube, input.Twitter, input.Twitch)
	user := profile.NewUser(id, name, email, handles, service.now())

	logger.Info("account_registered", slog.Uint64(constants.FieldUserID, id))

	return &Account{User: user, Verifier: verifier}, nil
}

// parseCredentials parses every field so the client sees all rejections at once.
func parseCredentials(input RegisterInput) (credential.Name, credential.Password, credential.Email, error) {
	name, nameErr := credential.ParseName(input.Name)
	password, passwordErr := credential.ParsePassword(input.Password)
	email, emailErr := credential.ParseEmail(input.Email)

	err := (&validate.Validator{}).
		Field(credential.FieldName, nameErr).
		Field(credential.FieldPassword, passwordErr).
		Field(credential.FieldEmail, emailErr).
		Err()
	if err != nil {
		password.Wipe()
		return credential.Name{}, credential.Password{}, credential.Email{}, err
	}

	return name, password, email, nil
}

// # Authentication Flow

/*
Authenticate checks a candidate password against the account's verifier.

Returns:
  - bool: true if the candidate matches
  - error: INTERNAL_ERROR if the stored verifier cannot be evaluated
*/
func (service *Service) Authenticate(context context.Context, account *Account, candidate string) (bool, error) {
	ok, err := sec.VerifyGJP2(candidate, account.Verifier)
	if err != nil {
		ctxutil.GetLogger(context, service.logger).Error("account_verifier_unusable",
			slog.Uint64(constants.FieldUserID, account.User.ID()),
			slog.Any("error", err),
		)
		return false, apperr.Internal(fmt.Errorf("account_service_verify_failed: %w", err))
	}
	return ok, nil
}
