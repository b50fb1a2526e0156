// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package api

import (
	"net/http"

	"github.com/topfreegames/sqsforwarder/logger"
)

//HealthcheckHandler handler
type HealthcheckHandler struct {
	log logger.Logger
}

// NewHealthcheckHandler creates a new healthcheck handler
func NewHealthcheckHandler(log logger.Logger) *HealthcheckHandler {
	return &HealthcheckHandler{log: log}
}

//ServeHTTP method
func (h *HealthcheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context(), h.log).Debug("healthcheck called")

	Write(w, http.StatusOK, `{"healthy": true}`)
}
