// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/topfreegames/sqsforwarder/logger"
)

//LoggingMiddleware handles logging
type LoggingMiddleware struct {
	log  logger.Logger
	next http.Handler
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	m := &LoggingMiddleware{log: log}
	return m
}

const requestIDKey = contextKey("requestID")

func newContextWithRequestIDAndLogger(ctx context.Context, l logger.Logger) context.Context {
	reqID := uuid.NewString()
	c := context.WithValue(ctx, requestIDKey, reqID)
	return logger.NewContext(c, l.WithField("requestId", reqID))
}

// RequestIDFromContext returns the id assigned to the current request
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LoggerFromContext grabs the current logger
func (m *LoggingMiddleware) LoggerFromContext(ctx context.Context) logger.Logger {
	return logger.FromContext(ctx, m.log)
}

// ServeHTTP method
func (m *LoggingMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := newContextWithRequestIDAndLogger(r.Context(), m.log)
	rw := newResponseWriter(w)

	start := time.Now()
	defer func() {
		route := ""
		if current := mux.CurrentRoute(r); current != nil {
			route, _ = current.GetPathTemplate()
		}
		l := m.LoggerFromContext(ctx).WithFields(map[string]interface{}{
			"path":            r.URL.Path,
			"route":           route,
			"requestDuration": time.Since(start).Nanoseconds(),
			"status":          rw.statusCode,
		})
		switch {
		case rw.statusCode > 499: // request is ok, but server failed
			l.Error("Response failed.")
		case rw.statusCode > 399:
			l.Warn("Request failed.")
		default:
			l.Debug("Request successful.")
		}
	}()

	m.next.ServeHTTP(rw, r.WithContext(ctx))
}

//SetNext middleware
func (m *LoggingMiddleware) SetNext(next http.Handler) {
	m.next = next
}
