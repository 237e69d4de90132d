// Copyright (c) 2026 Fyyur. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KonIngel/Fyyur/internal/platform/apperr"
)

func TestAs_TraversesWrapping(t *testing.T) {
	err := fmt.Errorf("service: %w", apperr.NotFound("Artist"))

	ae := apperr.As(err)
	if assert.NotNil(t, ae) {
		assert.Equal(t, "Artist not found", ae.Message)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	}
	assert.True(t, apperr.IsNotFound(err))
	assert.Nil(t, apperr.As(errors.New("plain")))
}

func TestWithCause_DoesNotMutateOriginal(t *testing.T) {
	base := apperr.Integrity("Venue still has shows")
	cause := errors.New("fk violation")

	withCause := base.WithCause(cause)

	assert.Nil(t, base.Cause)
	assert.ErrorIs(t, withCause, cause)
	assert.Equal(t, base.Message, withCause.Message)
}

func TestIsClientError(t *testing.T) {
	assert.True(t, apperr.IsClientError(apperr.ValidationError("bad")))
	assert.True(t, apperr.IsClientError(apperr.Integrity("fk")))
	assert.False(t, apperr.IsClientError(apperr.Internal(errors.New("db down"))))
	assert.False(t, apperr.IsClientError(errors.New("plain")))
}
