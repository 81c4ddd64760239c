// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth signs the dashboard manager in.

There is a single manager account whose username and bcrypt hash come from
configuration. A successful login returns an RS256 access token that the
authentication middleware accepts on the submissions routes.
*/
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Credentials identify the manager account.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Session is returned by a successful login.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}

// Service implements manager authentication.
type Service struct {
	account       Credentials
	tokenProvider TokenProvider
	logger        *slog.Logger
	now           func() time.Time
}

// NewService constructs a new [Service].
func NewService(account Credentials, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		account:       account,
		tokenProvider: tokenProvider,
		logger:        logger,
		now:           time.Now,
	}
}

/*
Login checks the manager credentials and issues an access token.

Description: Unknown usernames and wrong passwords get the same generic
message. With no password hash configured every login fails.

Returns:
  - *Session: Access token and its expiry
  - err: Unauthorized, or a signing failure
*/
func (service *Service) Login(context context.Context, username, password string) (*Session, error) {
	if service.account.PasswordHash == "" {
		service.logger.WarnContext(context, "manager_login_disabled")
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Compare both fields so the response time does not reveal which one failed.
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(service.account.Username)) == 1
	passwordOK := sec.CheckPasswordHash(password, service.account.PasswordHash)

	if !usernameOK || !passwordOK {
		service.logger.WarnContext(context, "manager_login_failed", slog.String("username", username))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	role := string(sec.RoleManager)
	token, err := service.tokenProvider.GenerateAccessToken(managerUserID, service.account.Username, role, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.InfoContext(context, "manager_logged_in", slog.String("username", username))

	return &Session{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresAt:   service.now().Add(constants.AccessTokenTTL).UTC(),
		Username:    service.account.Username,
		Role:        role,
	}, nil
}
