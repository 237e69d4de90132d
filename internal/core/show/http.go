// Copyright (c) 2026 Fyyur. All rights reserved.

package show

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/flash"
	requestutil "github.com/KonIngel/Fyyur/internal/platform/request"
	"github.com/KonIngel/Fyyur/internal/platform/respond"
)

const (
	noticeCreated      = "Show was successfully listed!"
	noticeCreateFailed = "An error occurred. Show could not be listed."
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listShows)
	router.Get("/create", handler.newShowForm)
	router.Post("/create", handler.createShow)

	return router
}

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	shows, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.View(writer, constants.ViewShows, map[string]any{"shows": shows}, nil)
}

func (handler *Handler) newShowForm(writer http.ResponseWriter, request *http.Request) {
	respond.View(writer, constants.ViewNewShow, map[string]any{"form": handler.service.DefaultForm()}, nil)
}

func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	var form Form
	err := requestutil.DecodeForm(request, &form)
	if err == nil {
		_, err = handler.service.Create(request.Context(), form)
	}

	if err != nil {
		respond.LogFailure(request, "show_create_failed", err,
			slog.Int("venue_id", form.VenueID),
			slog.Int("artist_id", form.ArtistID),
		)
		notice := flash.Failure(noticeCreateFailed)
		respond.View(writer, constants.ViewHome, nil, &notice)
		return
	}

	notice := flash.Success(noticeCreated)
	respond.View(writer, constants.ViewHome, nil, &notice)
}
