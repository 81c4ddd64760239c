// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/ctxutil"
	"github.com/taibuivan/artistly/internal/platform/sec"
	"github.com/taibuivan/artistly/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID parses a numeric URL parameter such as an artist or submission id.
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid " + name)
	}
	return id, nil
}

// maxClientIDLength bounds the visitor id, which becomes part of a storage key.
const maxClientIDLength = 128

/*
ClientID returns the browser profile identifier.

Description: Prefers the id the ClientID middleware stored in the context and
falls back to parsing the X-Client-ID header directly.
*/
func ClientID(request *http.Request) (string, error) {
	if id := ctxutil.GetClientID(request.Context()); id != "" {
		return id, nil
	}
	return ParseClientID(request.Header.Get(constants.HeaderClientID))
}

// ParseClientID trims and bounds a raw X-Client-ID value.
func ParseClientID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", validate.RequiredError("client_id", "X-Client-ID header is required")
	}
	if len(id) > maxClientIDLength {
		return "", validate.RequiredError("client_id", "X-Client-ID header is too long")
	}
	return id, nil
}

/*
Confirmed reports whether the caller explicitly confirmed a destructive action
via ?confirm=true.
*/
func Confirmed(request *http.Request) bool {
	confirmed, _ := strconv.ParseBool(request.URL.Query().Get("confirm"))
	return confirmed
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}
