// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/middleware"
	"github.com/taibuivan/artistly/internal/platform/sec"
	"github.com/taibuivan/artistly/internal/users/auth"
)

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))

func newService(t *testing.T, hash string) (*auth.Service, *sec.TokenService) {
	t.Helper()
	tokens, err := sec.NewEphemeralTokenService("artistly.test")
	require.NoError(t, err)
	return auth.NewService(auth.Credentials{Username: "manager", PasswordHash: hash}, tokens, discard), tokens
}

func TestLogin(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	service, tokens := newService(t, hash)

	session, err := service.Login(context.Background(), "manager", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, auth.TokenType, session.TokenType)

	claims, err := tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(sec.RoleManager), claims.Role)

	_, err = service.Login(context.Background(), "manager", "wrong")
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))

	_, err = service.Login(context.Background(), "someone", "s3cret-pass")
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	service, _ := newService(t, "")

	_, err := service.Login(context.Background(), "manager", "")
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))
}

func TestHandler_LoginThenMe(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	service, tokens := newService(t, hash)

	router := middleware.Authenticate(tokens)(auth.NewHandler(service).Routes())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username": "manager"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username": "manager", "password": "s3cret-pass"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data auth.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"manager"`)
}
