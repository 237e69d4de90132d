// Copyright (c) 2026 Fyyur. All rights reserved.

package venue

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

// BasePath is where the venue routes are mounted.
const BasePath = "/venues"

type Handler struct {
	service *Service
	flasher *flash.Flasher
}

func NewHandler(service *Service, flasher *flash.Flasher) *Handler {
	return &Handler{service: service, flasher: flasher}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listVenues)
	router.Post("/search", handler.searchVenues)
	router.Get("/create", handler.newVenueForm)
	router.Post("/create", handler.createVenue)
	router.Get("/{id}", handler.getVenue)
	router.Delete("/{id}", handler.deleteVenue)
	router.Get("/{id}/edit", handler.editVenueForm)
	router.Post("/{id}/edit", handler.updateVenue)

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

func (handler *Handler) listVenues(writer http.ResponseWriter, request *http.Request) {
	areas, err := handler.service.ListByLocation(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.View(writer, constants.ViewVenues, map[string]any{"areas": areas}, handler.pendingNotice(writer, request))
}

func (handler *Handler) searchVenues(writer http.ResponseWriter, request *http.Request) {
	term := requestutil.FormValue(request, constants.FieldSearchTerm)

	results, err := handler.service.Search(request.Context(), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.View(writer, constants.ViewSearchVenues, map[string]any{
		"results":     results,
		"search_term": term,
	}, nil)
}

func (handler *Handler) getVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.View(writer, constants.ViewVenue, map[string]any{"venue": detail}, handler.pendingNotice(writer, request))
}

func (handler *Handler) newVenueForm(writer http.ResponseWriter, request *http.Request) {
	respond.View(writer, constants.ViewNewVenue, map[string]any{
		"form":    Form{},
		"choices": choices(),
	}, nil)
}

func (handler *Handler) createVenue(writer http.ResponseWriter, request *http.Request) {
	var form Form
	err := requestutil.DecodeForm(request, &form)
	if err == nil {
		_, err = handler.service.Create(request.Context(), form)
	}

	if err != nil {
		respond.LogFailure(request, "venue_create_failed", err, slog.String("name", form.Name))
		notice := flash.Failure(fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		respond.View(writer, constants.ViewHome, nil, &notice)
		return
	}

	notice := flash.Success(fmt.Sprintf("Venue %s was successfully listed!", form.Name))
	respond.View(writer, constants.ViewHome, nil, &notice)
}

func (handler *Handler) editVenueForm(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	venue, err := handler.service.Get(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.View(writer, constants.ViewEditVenue, map[string]any{
		"venue_id": venueID,
		"form":     FormFrom(*venue),
		"choices":  choices(),
	}, nil)
}

func (handler *Handler) updateVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var form Form
	if err := requestutil.DecodeForm(request, &form); err != nil {
		// The venue must exist before a malformed form is worth reporting.
		if _, getErr := handler.service.Get(request.Context(), venueID); getErr != nil {
			respond.Error(writer, request, getErr)
			return
		}
		handler.renderEditErrors(writer, request, venueID, form, err)
		return
	}

	venue, err := handler.service.Update(request.Context(), venueID, form)
	if err != nil {
		handler.renderEditErrors(writer, request, venueID, form, err)
		return
	}

	handler.flasher.Write(writer, request, flash.Success(fmt.Sprintf("Venue %s was successfully updated!", venue.Name)))
	respond.Redirect(writer, request, fmt.Sprintf("%s/%d", BasePath, venueID))
}

// renderEditErrors re-renders the edit form for validation failures and falls
// back to the error page for everything else.
func (handler *Handler) renderEditErrors(writer http.ResponseWriter, request *http.Request, venueID int, form Form, err error) {
	appError := apperr.As(err)
	if appError == nil || appError.Code != apperr.CodeValidation {
		respond.Error(writer, request, err)
		return
	}

	respond.ViewStatus(writer, http.StatusBadRequest, constants.ViewEditVenue, map[string]any{
		"venue_id": venueID,
		"form":     form,
		"choices":  choices(),
		"errors":   appError.Details,
	}, nil)
}

func (handler *Handler) deleteVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	venue, err := handler.service.Delete(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.flasher.Write(writer, request, flash.Success(fmt.Sprintf("Venue %s was successfully deleted!", venue.Name)))
	respond.Redirect(writer, request, BasePath)
}
