// Package httpx provides the JSON response envelope shared by all handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

type failureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Data sends a single entity wrapped in the success envelope.
func Data(w http.ResponseWriter, status int, data any) {
	JSON(w, status, successEnvelope{Success: true, Data: data})
}

// List sends a collection wrapped in the success envelope with its count.
func List(w http.ResponseWriter, data any, count int) {
	JSON(w, http.StatusOK, successEnvelope{Success: true, Count: &count, Data: data})
}

// Fail sends a failure envelope for not-found and validation outcomes.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, failureEnvelope{Success: false, Message: message})
}

// Internal sends the catch-all error envelope with the underlying message.
func Internal(w http.ResponseWriter, message string) {
	if message == "" {
		message = "An unexpected error occurred"
	}
	JSON(w, http.StatusInternalServerError, errorEnvelope{Error: true, Message: message})
}

// DecodeJSON decodes a JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
