// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant to be installed as the router's MethodNotAllowed
// handler. Chi answers 405 when a path exists but the method does not; the
// admin API answers 404 instead, so callers cannot probe which paths exist
// by cycling methods.
//
// The route table is consulted with an exact pattern match against the raw
// request path, which is why Init registers routes with full flat patterns
// rather than nested subrouters. If the method turns out to be registered
// after all, the request is handed back to the router's normal pipeline.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
