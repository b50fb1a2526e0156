// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package api

import (
	"encoding/json"
	"net/http"
)

//Write to the response and with the status code
func Write(w http.ResponseWriter, status int, text string) {
	WriteBytes(w, status, []byte(text))
}

//WriteBytes to the response and with the status code
func WriteBytes(w http.ResponseWriter, status int, text []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(text)
}

//WriteJSON marshals v as the response body
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		Write(w, http.StatusInternalServerError, `{"error": "failed to encode response"}`)
		return
	}
	WriteBytes(w, status, b)
}
