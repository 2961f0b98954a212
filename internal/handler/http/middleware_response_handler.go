// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls so the logging middleware can
// observe the status code and body size after the downstream handler has
// returned.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, matching the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	status int

	// wroteHeader guards against forwarding a second WriteHeader.
	wroteHeader bool

	// size is the running total of bytes written to the response body.
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

// Write forwards b to the underlying writer, implicitly recording a 200
// status when WriteHeader was never called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
