// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artistly/internal/platform/respond"
)

// Handler exposes the active notice feed.
type Handler struct {
	center *Center
}

// NewHandler constructs a new [Handler].
func NewHandler(center *Center) *Handler {
	return &Handler{center: center}
}

// Routes returns the notice routes. The caller applies the dashboard guard.
//
// # Endpoints
//   - GET / : Notices that have not expired, oldest first.
func (handler *Handler) Routes(guard func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(guard)
	router.Get("/", handler.list)
	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	notices, err := handler.center.Active(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, notices)
}
