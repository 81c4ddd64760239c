// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
	"github.com/taibuivan/artistly/pkg/pagination"
)

// # Definitions & Constructors

// Handler exposes the manager dashboard endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the dashboard routes wrapped in guard.
//
// # Endpoints
//   - GET    /                   : Search and list (?q=, ?page=, ?limit=).
//   - GET    /stats              : Counts by status.
//   - POST   /refresh            : Reload the seed dataset.
//   - GET    /{id}               : Submission details.
//   - POST   /{id}/approve       : Approve.
//   - POST   /{id}/reject        : Reject.
//   - DELETE /{id}?confirm=true  : Delete permanently.
func (handler *Handler) Routes(guard func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(guard)

	router.Get("/", handler.list)
	router.Get("/stats", handler.stats)
	router.Post("/refresh", handler.refresh)

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", handler.get)
		r.Post("/approve", handler.approve)
		r.Post("/reject", handler.reject)
		r.Delete("/", handler.delete)
	})

	return router
}

// # Handlers

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.List(request.Context(), request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Window(records, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.Refresh(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, records)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) approve(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, handler.service.Approve, "Submission approved successfully")
}

func (handler *Handler) reject(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, handler.service.Reject, "Submission rejected successfully")
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id, requestutil.Confirmed(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// transition runs a status action and answers with the refreshed stats.
func (handler *Handler) transition(writer http.ResponseWriter, request *http.Request, action func(context.Context, int) error, message string) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := action(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OKWithMessage(writer, stats, message)
}
