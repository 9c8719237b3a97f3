package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
)

// statusResponse is the envelope the auth endpoints answer with. The client
// contract keys off the status field, not the HTTP status code.
type statusResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeStatusOK answers 200 {status:"ok"} with optional data.
func writeStatusOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Data: data})
}

// writeStatusError answers the auth failure envelope. The HTTP status is
// always 200: clients of the original API read only the JSON status field.
func writeStatusError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "error", Error: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
