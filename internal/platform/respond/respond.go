// Copyright (c) 2026 Fyyur. All rights reserved.

// Package respond provides HTTP response helpers used by all handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Handlers never render HTML themselves: they select a named view and hand it
// shaped data. Every response (page or error) is a predictable JSON envelope
// naming the view, so any renderer (server templates, SPA) can consume it.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KonIngel/Fyyur/internal/platform/apperr"
	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/ctxutil"
	"github.com/KonIngel/Fyyur/internal/platform/flash"
)

// Page is the JSON envelope for a rendered view.
type Page struct {
	View  string        `json:"view"`
	Data  any           `json:"data,omitempty"`
	Flash *flash.Notice `json:"flash,omitempty"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	View    string              `json:"view,omitempty"`
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with a raw payload.
func OK(writer http.ResponseWriter, payload any) {
	JSON(writer, http.StatusOK, payload)
}

// View writes a 200 OK page envelope.
func View(writer http.ResponseWriter, view string, data any, notice *flash.Notice) {
	ViewStatus(writer, http.StatusOK, view, data, notice)
}

// ViewStatus writes a page envelope with an explicit status code.
func ViewStatus(writer http.ResponseWriter, statusCode int, view string, data any, notice *flash.Notice) {
	JSON(writer, statusCode, Page{View: view, Data: data, Flash: notice})
}

// Redirect sends a 303 See Other so browsers follow up with a GET regardless
// of the request method (POST edit, DELETE venue).
func Redirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusSeeOther)
}

// Error converts any Go error into a standardized error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		View:    ErrorView(appError.HTTPStatus),
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// ErrorView maps a status code onto its dedicated error page, if any.
func ErrorView(statusCode int) string {
	switch {
	case statusCode == http.StatusNotFound:
		return constants.ViewNotFound
	case statusCode >= 500:
		return constants.ViewServerError
	default:
		return ""
	}
}

// LogFailure records a failed operation whose cause the client never sees.
// Client errors (validation, integrity, not found) log at WARN, anything else at ERROR.
func LogFailure(request *http.Request, event string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	code := apperr.CodeInternal
	if appError := apperr.As(err); appError != nil {
		code = appError.Code
		if apperr.IsClientError(err) {
			level = slog.LevelWarn
		}
	}

	attrs = append(attrs, slog.String("code", code), slog.Any("error", err))
	ctxutil.GetLogger(request.Context()).LogAttrs(request.Context(), level, event, attrs...)
}
