package util

import (
	"encoding/json"
	"log"
	"net/http"

	"schoolbook/internal/record"
)

// JSONResponse structure for successful responses
type JSONResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// JSONError structure for error responses
type JSONError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON is a helper to write JSON responses
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := JSONResponse{Success: true, Data: payload}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}

// WriteJSONMessage writes a success envelope carrying only a message.
func WriteJSONMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := JSONResponse{Success: true, Message: message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}

// WriteJSONError is a helper to write standardized error JSON responses
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	log.Printf("HTTP Error %d: %s", status, message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResponse := JSONError{
		Success: false,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("Error writing JSON error response: %v", err)
	}
}

// HandleServiceError maps record-layer errors to HTTP responses. Validation
// and conflicts (duplicate unique fields, duplicate bill names) surface as
// 400, missing records as 404, and everything else as 500 with the
// underlying message passed through to the caller.
func HandleServiceError(w http.ResponseWriter, err error) {
	switch {
	case record.IsValidation(err):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case record.IsConflict(err):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case record.IsNotFound(err):
		WriteJSONError(w, http.StatusNotFound, err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
