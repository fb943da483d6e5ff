//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/handler/httperr"
	"gin-shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", booking.ErrBookingNotFound, http.StatusNotFound},
		{"not available", item.ErrItemNotAvailable, http.StatusBadRequest},
		{"not owner", item.ErrNotItemOwner, http.StatusForbidden},
		{"validation", booking.ErrInvalidPeriod, http.StatusBadRequest},
		{"conflict", user.ErrEmailTaken, http.StatusConflict},
		{"wrapped kind survives", errs.Wrap(item.ErrItemNotFound, "loading item"), http.StatusNotFound},
		{"unmarked", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("kind message is exposed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.AbortWithDomainError(c, item.ErrItemNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"message":"item not found"}}`, w.Body.String())
		assert.True(t, c.IsAborted())
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.AbortWithDomainError(c, errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.Len(t, c.Errors, 1)
	})
}

func TestDomainResponse(t *testing.T) {
	resp := httperr.DomainResponse(item.ErrItemHasBookings)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "item has bookings and cannot be deleted", resp.Error.Message)

	resp = httperr.DomainResponse(errors.New("tx aborted"))
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, "Internal server error", resp.Error.Message)
}
