// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and header names.
  - Storage: Redis key prefixes and queue names.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "artistly-api"
	AppVersion = "0.3.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Profile image uploads are bounded at 5 MiB, so this stays generous.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 20 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 15 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "artistly.app"

	// AccessTokenTTL is the lifetime of a manager dashboard token.
	AccessTokenTTL = 8 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
	HeaderRetryAfter    = "Retry-After"

	// HeaderClientID identifies the browser profile owning a preferences blob.
	HeaderClientID = "X-Client-ID"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixOnboarding  = "onboarding:session:"
	RedisPrefixPreferences = "preferences:blob:"
	RedisKeyNotices        = "notify:notices"
)

// # Upload Limits

const (
	// MaxProfileImageBytes is the largest accepted onboarding profile image.
	MaxProfileImageBytes = 5 << 20 // 5 MiB

	// MaxMultipartMemory bounds the in-memory part of multipart parsing.
	MaxMultipartMemory = 6 << 20
)

// # Sessions & Queues

const (
	// OnboardingSessionTTL expires an abandoned onboarding wizard.
	OnboardingSessionTTL = 24 * time.Hour

	// QueueSubmissions is the asynq queue carrying finished onboarding profiles.
	QueueSubmissions = "submissions"

	// TaskSubmissionCreate turns an onboarding profile into a pending submission.
	TaskSubmissionCreate = "submission:create"

	// SubmissionTaskRetries bounds asynq redelivery of a failed submission task.
	SubmissionTaskRetries = 5
)
