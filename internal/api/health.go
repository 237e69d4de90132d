// Copyright (c) 2026 Fyyur. All rights reserved.

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/respond"
)

// readinessTimeout bounds every dependency check of one /ready probe.
const readinessTimeout = 3 * time.Second

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(context context.Context) error

	// CheckFlashStore pings the Redis client holding flash notices.
	CheckFlashStore func(context context.Context) error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness handles GET /ready and answers 503 while any dependency is down.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	checkCtx, cancel := context.WithTimeout(request.Context(), readinessTimeout)
	defer cancel()

	results := make([]checkResult, 0, 2)
	results = handler.check(checkCtx, results, "postgres", handler.dependencies.CheckDatabase)
	results = handler.check(checkCtx, results, "redis", handler.dependencies.CheckFlashStore)

	status, httpStatus := "ready", http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			status, httpStatus = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, httpStatus, map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	})
}

func (handler *healthHandler) check(context context.Context, results []checkResult, name string, probe func(context.Context) error) []checkResult {
	if probe == nil {
		return results
	}

	result := checkResult{Name: name, IsOK: true}
	if err := probe(context); err != nil {
		result.IsOK = false
		result.Error = err.Error()
		handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
	}
	return append(results, result)
}
