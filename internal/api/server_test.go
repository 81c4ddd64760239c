// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/api"
	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/notify"
	"github.com/taibuivan/artistly/internal/onboarding"
	"github.com/taibuivan/artistly/internal/platform/blob"
	"github.com/taibuivan/artistly/internal/platform/config"
	"github.com/taibuivan/artistly/internal/platform/sec"
	"github.com/taibuivan/artistly/internal/platform/simulate"
	"github.com/taibuivan/artistly/internal/preferences"
	"github.com/taibuivan/artistly/internal/users/auth"
)

func newServer(t *testing.T, cfg *config.Config, deps api.HealthDependencies) (http.Handler, *sec.TokenService) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	data, err := catalog.Load(logger)
	require.NoError(t, err)

	tokens, err := sec.NewEphemeralTokenService("artistly.test")
	require.NoError(t, err)

	center := notify.NewCenter(notify.NewMemoryStore(), time.Minute, logger)
	reviews := submission.NewService(submission.NewMemoryRepository(data.SeedSubmissions()), data.SeedSubmissions, simulate.Instant(), center, logger)
	submitter := onboarding.NewRemoteSubmitter(simulate.Instant(), onboarding.NewDirectSubmitter(reviews), logger)
	wizard := onboarding.NewService(onboarding.NewMemoryStore(time.Hour), blob.NewMemoryStore(), submitter, logger)

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	server := api.NewServer(context.Background(), cfg, logger, tokens, api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Auth:          auth.NewHandler(auth.NewService(auth.Credentials{Username: "manager"}, tokens, logger)),
		Artists:       artist.NewHandler(artist.NewService(artist.NewMemoryRepository(data.Artists), logger)),
		Onboarding:    onboarding.NewHandler(wizard),
		Submissions:   submission.NewHandler(reviews),
		Notifications: notify.NewHandler(center),
		Preferences:   preferences.NewHandler(preferences.NewService(preferences.NewMemoryBackend(), logger)),
	})
	return server.Handler(), tokens
}

func do(handler http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	handler, _ := newServer(t, &config.Config{Environment: "development"}, api.HealthDependencies{})

	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/ready", "").Code)

	rec := do(handler, http.MethodGet, "/api/v1/artists?category=singers&location=pune", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Priya Sharma")

	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/api/v1/onboarding/options", "").Code)
	assert.Equal(t, http.StatusCreated, do(handler, http.MethodPost, "/api/v1/onboarding", "").Code)
}

func TestServer_DashboardGuard(t *testing.T) {
	handler, tokens := newServer(t, &config.Config{Environment: "development"}, api.HealthDependencies{})

	assert.Equal(t, http.StatusUnauthorized, do(handler, http.MethodGet, "/api/v1/submissions", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(handler, http.MethodGet, "/api/v1/notifications", "").Code)

	member, err := tokens.GenerateAccessToken("u1", "visitor", string(sec.RoleMember), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(handler, http.MethodGet, "/api/v1/submissions", member).Code)

	manager, err := tokens.GenerateAccessToken("manager", "manager", string(sec.RoleManager), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/api/v1/submissions/stats", manager).Code)

	assert.Equal(t, http.StatusOK, do(handler, http.MethodPost, "/api/v1/submissions/7/approve", manager).Code)
	rec := do(handler, http.MethodGet, "/api/v1/notifications", manager)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Submission approved successfully")
}

func TestServer_PublicDashboard(t *testing.T) {
	handler, _ := newServer(t, &config.Config{Environment: "development", DashboardPublic: true}, api.HealthDependencies{})

	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/api/v1/submissions?q=pillai", "").Code)
}

func TestServer_ReadinessDegraded(t *testing.T) {
	handler, _ := newServer(t, &config.Config{Environment: "development"}, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("connection refused") },
	})

	rec := do(handler, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"degraded"`))
	assert.Contains(t, rec.Body.String(), "connection refused")
}
