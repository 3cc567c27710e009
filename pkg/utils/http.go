package utils

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// SuccessResponse confirms a completed send operation
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteSuccess(w http.ResponseWriter, message string) error {
	return WriteJSON(w, SuccessResponse{Success: true, Message: message}, http.StatusOK)
}

// ErrorResponse describes a failed operation; Details carries the
// underlying delivery error when there is one.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: message}, code)
}

func WriteErrorDetails(w http.ResponseWriter, message, details string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: message, Details: details}, code)
}

// MissingFieldsResponse lists the fields a valid payload must carry
type MissingFieldsResponse struct {
	Error    string   `json:"error"`
	Required []string `json:"required"`
}

func WriteMissingFields(w http.ResponseWriter, required []string) error {
	return WriteJSON(w, MissingFieldsResponse{
		Error:    "Missing required fields",
		Required: required,
	}, http.StatusBadRequest)
}
