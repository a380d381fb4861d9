// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so the logging middleware can
// read the status code and body size after the downstream handler returns.
// Nothing is buffered; writes pass straight through.
//
// WriteHeader is forwarded at most once. The standard library documents that a
// second call is a programming error, so repeats are dropped instead of being
// passed on.
type responseWriter struct {
	http.ResponseWriter

	// status holds the code from the first WriteHeader call, zero before it.
	status int

	wroteHeader bool

	// size is the total number of body bytes written across all Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer and accumulates size. A Write
// without a prior WriteHeader implies status 200, same as net/http.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
