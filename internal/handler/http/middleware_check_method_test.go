// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// adminStyleRouter mirrors the shape of the real route table (flat patterns,
// mixed GET/POST) without pulling in services or a logger.
func adminStyleRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/sync/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("status"))
	})
	router.Get("/api/sync/conflicts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/sync/sweep", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/sync/failed/reset", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := adminStyleRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "registered method passes through",
			method:     http.MethodGet,
			path:       "/api/sync/status",
			wantStatus: http.StatusOK,
		},
		{
			name:       "registered POST passes through",
			method:     http.MethodPost,
			path:       "/api/sync/sweep",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST on a GET-only route hides as 404",
			method:     http.MethodPost,
			path:       "/api/sync/status",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GET on a POST-only route hides as 404",
			method:     http.MethodGet,
			path:       "/api/sync/sweep",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "DELETE never registered anywhere",
			method:     http.MethodDelete,
			path:       "/api/sync/conflicts",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown path stays 404",
			method:     http.MethodGet,
			path:       "/api/sync/nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_HandlerBodyForwarded(t *testing.T) {
	router := adminStyleRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "status", rr.Body.String())
}

func TestCheckHTTPMethod_EveryWrongMethodIs404(t *testing.T) {
	router := adminStyleRouter()

	for _, method := range []string{
		http.MethodPut, http.MethodPatch, http.MethodDelete,
		http.MethodOptions, http.MethodHead,
	} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/sync/status", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_ConcurrentProbing(t *testing.T) {
	router := adminStyleRouter()

	const n = 40
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodDelete
			}
			req := httptest.NewRequest(method, "/api/sync/status", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			done <- rr.Code
		}(i)
	}

	var ok, hidden int
	for i := 0; i < n; i++ {
		switch <-done {
		case http.StatusOK:
			ok++
		case http.StatusNotFound:
			hidden++
		}
	}

	assert.Equal(t, n/2, ok)
	assert.Equal(t, n/2, hidden)
}
