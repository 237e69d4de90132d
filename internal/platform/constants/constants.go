// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, header names, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - HTTP: Header names shared by middleware and handlers.
  - Views: Names of the page templates the renderer resolves.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "fyyur"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds database and cache connection attempts at boot.
	StartupTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Forms

const (
	// MaxFormMemory caps the in-memory portion of multipart form parsing.
	MaxFormMemory = 1 << 20

	// FieldSearchTerm is the form field carrying a search query.
	FieldSearchTerm = "search_term"
)

// # Views

const (
	ViewHome          = "pages/home"
	ViewVenues        = "pages/venues"
	ViewVenue         = "pages/show_venue"
	ViewSearchVenues  = "pages/search_venues"
	ViewArtists       = "pages/artists"
	ViewArtist        = "pages/show_artist"
	ViewSearchArtists = "pages/search_artists"
	ViewShows         = "pages/shows"
	ViewNewVenue      = "forms/new_venue"
	ViewEditVenue     = "forms/edit_venue"
	ViewNewArtist     = "forms/new_artist"
	ViewEditArtist    = "forms/edit_artist"
	ViewNewShow       = "forms/new_show"
	ViewNotFound      = "errors/404"
	ViewServerError   = "errors/500"
)

// # JSON Field Identifiers

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixFlash = "flash:"
)
