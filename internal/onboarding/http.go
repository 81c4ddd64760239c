// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

// # Definitions & Constructors

// Handler exposes the onboarding wizard over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// View is a wizard plus the values derived from it.
type View struct {
	*Wizard
	Section   Section `json:"section"`
	Progress  int     `json:"progress"`
	CanSubmit bool    `json:"can_submit"`
	IsFirst   bool    `json:"is_first"`
	IsLast    bool    `json:"is_last"`
}

func viewOf(wizard *Wizard) View {
	return View{
		Wizard:    wizard,
		Section:   wizard.Step.Section(),
		Progress:  wizard.Progress(),
		CanSubmit: wizard.CanSubmit(),
		IsFirst:   wizard.Step == StepPersonal,
		IsLast:    wizard.Step == lastStep,
	}
}

// Routes returns a router for the onboarding domain.
//
// # Endpoints
//   - GET    /options      : Vocabularies, fee ranges and sections.
//   - POST   /             : Start a session.
//   - GET    /{id}         : Current state.
//   - PATCH  /{id}         : Update fields.
//   - POST   /{id}/next    : Validate the step and advance.
//   - POST   /{id}/prev    : Go back one step.
//   - POST   /{id}/image   : Upload the profile photo (multipart "image").
//   - DELETE /{id}/image   : Remove the profile photo.
//   - POST   /{id}/submit  : Submit the profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/options", handler.options)
	router.Post("/", handler.start)

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", handler.get)
		r.Patch("/", handler.update)
		r.Post("/next", handler.next)
		r.Post("/prev", handler.prev)
		r.Post("/image", handler.attachImage)
		r.Delete("/image", handler.removeImage)
		r.Post("/submit", handler.submit)
	})

	return router
}

// # Handlers

func (handler *Handler) options(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Options())
}

func (handler *Handler) start(writer http.ResponseWriter, request *http.Request) {
	wizard, err := handler.service.Start(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, viewOf(wizard))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	wizard, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	handler.reply(writer, request, wizard, err)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	wizard, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), patch)
	handler.reply(writer, request, wizard, err)
}

func (handler *Handler) next(writer http.ResponseWriter, request *http.Request) {
	wizard, err := handler.service.Next(request.Context(), requestutil.Param(request, "id"))
	handler.reply(writer, request, wizard, err)
}

func (handler *Handler) prev(writer http.ResponseWriter, request *http.Request) {
	wizard, err := handler.service.Prev(request.Context(), requestutil.Param(request, "id"))
	handler.reply(writer, request, wizard, err)
}

func (handler *Handler) attachImage(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxMultipartMemory)

	if err := request.ParseMultipartForm(constants.MaxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(writer, request, CheckImage("image/*", constants.MaxProfileImageBytes+1))
			return
		}
		respond.Error(writer, request, apperr.BadRequest("Expected a multipart form with an image file"))
		return
	}

	file, header, err := request.FormFile("image")
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("Missing image file"))
		return
	}
	defer file.Close()

	wizard, err := handler.service.AttachImage(request.Context(), requestutil.Param(request, "id"),
		header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	handler.reply(writer, request, wizard, err)
}

func (handler *Handler) removeImage(writer http.ResponseWriter, request *http.Request) {
	wizard, err := handler.service.RemoveImage(request.Context(), requestutil.Param(request, "id"))
	handler.reply(writer, request, wizard, err)
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	wizard, err := handler.service.Submit(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OKWithMessage(writer, viewOf(wizard), wizard.Message)
}

func (handler *Handler) reply(writer http.ResponseWriter, request *http.Request, wizard *Wizard, err error) {
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, viewOf(wizard))
}
