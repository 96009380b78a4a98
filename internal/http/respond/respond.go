package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIError is the standard error body returned by every handler.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// JSON writes payload as the response body with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Error writes an error response in the standard shape.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, APIError{StatusCode: status, Message: message})
}
