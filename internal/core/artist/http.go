// Copyright (c) 2026 Fyyur. All rights reserved.

package artist

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KonIngel/Fyyur/internal/core/genre"
	"github.com/KonIngel/Fyyur/internal/core/location"
	"github.com/KonIngel/Fyyur/internal/platform/apperr"
	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/flash"
	requestutil "github.com/KonIngel/Fyyur/internal/platform/request"
	"github.com/KonIngel/Fyyur/internal/platform/respond"
)

// BasePath is where the artist routes are mounted.
const BasePath = "/artists"

type Handler struct {
	service *Service
	flasher *flash.Flasher
}

func NewHandler(service *Service, flasher *flash.Flasher) *Handler {
	return &Handler{service: service, flasher: flasher}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArtists)
	router.Post("/search", handler.searchArtists)
	router.Get("/create", handler.newArtistForm)
	router.Post("/create", handler.createArtist)
	router.Get("/{id}", handler.getArtist)
	router.Get("/{id}/edit", handler.editArtistForm)
	router.Post("/{id}/edit", handler.updateArtist)

	return router
}

func choices() map[string][]string {
	return map[string][]string{"genres": genre.Choices, "states": location.States}
}

func (handler *Handler) pendingNotice(writer http.ResponseWriter, request *http.Request) *flash.Notice {
	if notice, ok := handler.flasher.ReadAndClear(writer, request); ok {
		return &notice
	}
	return nil
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.View(writer, constants.ViewArtists, map[string]any{"artists": artists}, handler.pendingNotice(writer, request))
}

func (handler *Handler) searchArtists(writer http.ResponseWriter, request *http.Request) {
	term := requestutil.FormValue(request, constants.FieldSearchTerm)

	results, err := handler.service.Search(request.Context(), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.View(writer, constants.ViewSearchArtists, map[string]any{
		"results":     results,
		"search_term": term,
	}, nil)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.View(writer, constants.ViewArtist, map[string]any{"artist": detail}, handler.pendingNotice(writer, request))
}

func (handler *Handler) newArtistForm(writer http.ResponseWriter, request *http.Request) {
	respond.View(writer, constants.ViewNewArtist, map[string]any{
		"form":    Form{},
		"choices": choices(),
	}, nil)
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var form Form
	err := requestutil.DecodeForm(request, &form)
	if err == nil {
		_, err = handler.service.Create(request.Context(), form)
	}

	if err != nil {
		respond.LogFailure(request, "artist_create_failed", err, slog.String("name", form.Name))
		notice := flash.Failure(fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		respond.View(writer, constants.ViewHome, nil, &notice)
		return
	}

	notice := flash.Success(fmt.Sprintf("Artist %s was successfully listed!", form.Name))
	respond.View(writer, constants.ViewHome, nil, &notice)
}

func (handler *Handler) editArtistForm(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.Get(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.View(writer, constants.ViewEditArtist, map[string]any{
		"artist_id": artistID,
		"form":      FormFrom(*artist),
		"choices":   choices(),
	}, nil)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var form Form
	if err := requestutil.DecodeForm(request, &form); err != nil {
		if _, getErr := handler.service.Get(request.Context(), artistID); getErr != nil {
			respond.Error(writer, request, getErr)
			return
		}
		handler.renderEditErrors(writer, request, artistID, form, err)
		return
	}

	artist, err := handler.service.Update(request.Context(), artistID, form)
	if err != nil {
		handler.renderEditErrors(writer, request, artistID, form, err)
		return
	}

	handler.flasher.Write(writer, request, flash.Success(fmt.Sprintf("Artist %s was successfully updated!", artist.Name)))
	respond.Redirect(writer, request, fmt.Sprintf("%s/%d", BasePath, artistID))
}

func (handler *Handler) renderEditErrors(writer http.ResponseWriter, request *http.Request, artistID int, form Form, err error) {
	appError := apperr.As(err)
	if appError == nil || appError.Code != apperr.CodeValidation {
		respond.Error(writer, request, err)
		return
	}

	respond.ViewStatus(writer, http.StatusBadRequest, constants.ViewEditArtist, map[string]any{
		"artist_id": artistID,
		"form":      form,
		"choices":   choices(),
		"errors":    appError.Details,
	}, nil)
}
