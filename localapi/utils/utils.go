/*
 * Copyright (C) 2024 The "PowerMesh/locator" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package utils provides helpers for writing local API responses.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteAsJSON marshals the given value into the response, enforcing
// application/json content type.
func WriteAsJSON(v interface{}, writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(writer).Encode(v); err != nil {
		http.Error(writer, "Http response write error", http.StatusInternalServerError)
	}
}

type errorMessage struct {
	Message string `json:"message"`
}

// SendError generates error response for error
func SendError(writer http.ResponseWriter, err error, httpCode int) {
	SendErrorMessage(writer, fmt.Sprint(err), httpCode)
}

// SendErrorMessage generates error response with custom json message
func SendErrorMessage(writer http.ResponseWriter, message string, httpCode int) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(httpCode)
	if err := json.NewEncoder(writer).Encode(&errorMessage{Message: message}); err != nil {
		http.Error(writer, "Http response write error", http.StatusInternalServerError)
	}
}
