// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
	"github.com/taibuivan/artistly/pkg/pagination"
)

// # Definitions & Constructors

// Handler exposes the public artist directory.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the directory.
//
// # Endpoints
//   - GET /                     : Filtered listing seeded from the query string.
//   - GET /categories           : Distinct categories for the filter panel.
//   - GET /categories/featured  : Landing page category tiles.
//   - GET /categories/{name}    : Artists of one category.
//   - GET /search?q=            : Free-text lookup.
//   - GET /{id}                 : Artist profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/categories", handler.categories)
	router.Get("/categories/featured", handler.featured)
	router.Get("/categories/{name}", handler.byCategory)
	router.Get("/search", handler.search)
	router.Get("/{id}", handler.get)

	return router
}

// # Response Payloads

// ListResult is the listing payload. When nothing matches, Empty is set and
// ResetFilter carries the state a "clear all filters" action should apply.
type ListResult struct {
	Artists       []Artist        `json:"artists"`
	Filter        Filter          `json:"filter"`
	ActiveFilters int             `json:"active_filters"`
	Empty         bool            `json:"empty"`
	ResetFilter   *Filter         `json:"reset_filter,omitempty"`
	Meta          pagination.Meta `json:"meta"`
}

// # Handlers

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	known, err := handler.service.Categories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter, err := FromQuery(request.URL.Query(), known)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artists, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Window(artists, pagination.FromRequest(request))

	result := ListResult{
		Artists:       page,
		Filter:        filter,
		ActiveFilters: filter.ActiveCount(),
		Empty:         len(artists) == 0,
		Meta:          meta,
	}
	if result.Empty {
		reset := DefaultFilter()
		result.ResetFilter = &reset
	}

	respond.OK(writer, result)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

func (handler *Handler) categories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.Categories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) featured(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, Featured())
}

func (handler *Handler) byCategory(writer http.ResponseWriter, request *http.Request) {
	known, err := handler.service.Categories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	name := ResolveCategory(requestutil.Param(request, "name"), known)

	artists, err := handler.service.ByCategory(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.Search(request.Context(), request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}
