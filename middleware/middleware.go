// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package middleware

import "net/http"

type contextKey string

//Middleware contract
type Middleware interface {
	SetNext(http.Handler)
	http.Handler
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Chain applies middlewares to a http.HandlerFunc
func Chain(f http.Handler, middlewares ...Middleware) http.Handler {
	if len(middlewares) == 0 {
		return f
	}

	var last Middleware
	for i, m := range middlewares {
		if i == len(middlewares)-1 {
			m.SetNext(f)
		}

		if i > 0 {
			last.SetNext(m)
		}

		last = m
	}

	return middlewares[0]
}
