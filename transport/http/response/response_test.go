package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourbook/shared/failure"
	"tourbook/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{name: "not found", err: failure.NotFound("excursion not found"), code: http.StatusNotFound, body: `{"message":"excursion not found"}`},
		{name: "validation", err: failure.BadRequestFromString("nombre is required"), code: http.StatusBadRequest, body: `{"message":"nombre is required"}`},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError, body: `{"message":"boom"}`},
		{name: "nil", err: nil, code: http.StatusInternalServerError, body: `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			response.WithError(w, tt.err)

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	response.WithJSON(w, http.StatusOK, []string{"Aventura", "Cultural"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Aventura","Cultural"]`, w.Body.String())
}

func TestWithCreated(t *testing.T) {
	w := httptest.NewRecorder()
	response.WithCreated(w, "tour-cenote-1700000000000")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"tour-cenote-1700000000000"}`, w.Body.String())
}
