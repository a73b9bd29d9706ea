// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	router.Get("/search", ok)
	router.Route("/api", func(r chi.Router) {
		r.Get("/version", ok)
		r.Get("/items", ok)
		r.Post("/items", ok)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "GET /search passes through",
			method:         http.MethodGet,
			path:           "/search",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /search is not allowed",
			method:         http.MethodPost,
			path:           "/search",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET",
		},
		{
			name:           "DELETE on a sub-router route",
			method:         http.MethodDelete,
			path:           "/api/version",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET",
		},
		{
			name:           "several methods are listed sorted",
			method:         http.MethodPut,
			path:           "/api/items",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET, POST",
		},
		{
			name:           "unknown route is not found",
			method:         http.MethodGet,
			path:           "/api/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Allow"))
		})
	}
}
