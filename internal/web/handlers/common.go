package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON response: %v", err)
		}
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// errorResponse is the body of a failed conversion. Index points at the
// offending image when the failure is tied to one.
type errorResponse struct {
	Error string `json:"error"`
	Index *int   `json:"index,omitempty"`
}

// respondIndexedError sends an error response that names the failing image.
func respondIndexedError(w http.ResponseWriter, status int, message string, index int) {
	respondJSON(w, status, errorResponse{Error: message, Index: &index})
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
