// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/topfreegames/sqsforwarder/logger"
	"github.com/topfreegames/sqsforwarder/sender"
)

const maxEventBytes = 256 * 1024

type invokeResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

//InvokeHandler runs the function with the request body as its event
type InvokeHandler struct {
	invoker Invoker
	log     logger.Logger
}

// NewInvokeHandler creates a new invoke handler
func NewInvokeHandler(invoker Invoker, log logger.Logger) *InvokeHandler {
	return &InvokeHandler{invoker: invoker, log: log}
}

//ServeHTTP method
func (h *InvokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context(), h.log)

	event := sender.Event{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			l.WithField("limit", tooLarge.Limit).Debug("event payload too large")
			WriteJSON(w, http.StatusRequestEntityTooLarge, invokeResponse{Error: err.Error()})
			return
		}
		l.WithError(err).Debug("invalid event payload")
		WriteJSON(w, http.StatusBadRequest, invokeResponse{Error: "invalid event payload: " + err.Error()})
		return
	}

	result, err := h.invoker.HandleRequest(r.Context(), event)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, invokeResponse{Error: err.Error()})
		return
	}
	WriteJSON(w, http.StatusOK, invokeResponse{Result: result})
}
