// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package flash provides one-time user notices persisted across redirects.

A notice is written before a redirect (e.g. after editing a venue) and read
and cleared by the next page render. The browser only carries an opaque notice
id in a cookie; the notice itself lives in a [Store] with a TTL so unread
notices expire on their own.
*/
package flash

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KonIngel/Fyyur/internal/platform/ctxutil"
	"github.com/KonIngel/Fyyur/pkg/uuid"
)

// CookieName is the cookie carrying the pending notice id.
const CookieName = "fyyur_flash"

// Kind classifies flash notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice is one user-facing message.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Success creates a success notice.
func Success(message string) Notice {
	return Notice{Kind: KindSuccess, Message: message}
}

// Failure creates an error notice.
func Failure(message string) Notice {
	return Notice{Kind: KindError, Message: message}
}

// Valid reports whether the notice has a known kind and a message.
func (n Notice) Valid() bool {
	if strings.TrimSpace(n.Message) == "" {
		return false
	}
	switch n.Kind {
	case KindSuccess, KindInfo, KindError:
		return true
	default:
		return false
	}
}

// Store persists pending notices by id.
type Store interface {
	// Put saves a notice that expires after ttl.
	Put(ctx context.Context, id string, notice Notice, ttl time.Duration) error

	// Take returns and deletes the notice. A missing or expired notice is
	// reported as ok == false with a nil error.
	Take(ctx context.Context, id string) (notice Notice, ok bool, err error)
}

// Flasher writes and reads notices for HTTP requests.
type Flasher struct {
	store Store
	ttl   time.Duration
}

// New constructs a [Flasher] backed by store.
func New(store Store, ttl time.Duration) *Flasher {
	return &Flasher{store: store, ttl: ttl}
}

// Write stores a notice for the next page render.
//
// Storage failures are logged and otherwise ignored: losing a notice must never
// fail the request that produced it.
func (flasher *Flasher) Write(writer http.ResponseWriter, request *http.Request, notice Notice) {
	if flasher == nil || !notice.Valid() {
		return
	}

	id := uuid.New()
	if err := flasher.store.Put(request.Context(), id, notice, flasher.ttl); err != nil {
		ctxutil.GetLogger(request.Context()).Warn("flash_write_failed", slog.Any("error", err))
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(flasher.ttl.Seconds()),
		HttpOnly: true,
		Secure:   isHTTPS(request),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending notice, if any, and clears it.
func (flasher *Flasher) ReadAndClear(writer http.ResponseWriter, request *http.Request) (Notice, bool) {
	if flasher == nil {
		return Notice{}, false
	}

	cookie, err := request.Cookie(CookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return Notice{}, false
	}

	flasher.clear(writer, request)

	notice, ok, err := flasher.store.Take(request.Context(), cookie.Value)
	if err != nil {
		ctxutil.GetLogger(request.Context()).Warn("flash_read_failed", slog.Any("error", err))
		return Notice{}, false
	}
	if !ok || !notice.Valid() {
		return Notice{}, false
	}
	return notice, true
}

// clear expires the notice cookie.
func (flasher *Flasher) clear(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isHTTPS(request),
		SameSite: http.SameSiteLaxMode,
	})
}

func isHTTPS(request *http.Request) bool {
	if request.TLS != nil {
		return true
	}
	return strings.EqualFold(request.Header.Get("X-Forwarded-Proto"), "https")
}
