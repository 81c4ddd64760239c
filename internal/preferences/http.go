// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preferences

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

// Handler exposes a visitor's preferences, keyed by the X-Client-ID header.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a router for the preferences domain.
//
// # Endpoints
//   - GET  /                : Current state.
//   - GET  /favorites/{id}  : Whether an artist is a favourite.
//   - POST /actions         : Apply one action and return the new state.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)
	router.Get("/favorites/{id}", handler.isFavorite)
	router.Post("/actions", handler.dispatch)

	return router
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.ClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.Get(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

func (handler *Handler) isFavorite(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.ClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.Get(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"favorite": state.IsFavorite(artistID)})
}

func (handler *Handler) dispatch(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.ClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var envelope Envelope
	if err := requestutil.DecodeJSON(request, &envelope); err != nil {
		respond.Error(writer, request, err)
		return
	}

	action, err := DecodeAction(envelope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.Dispatch(request.Context(), clientID, action)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}
