// Package utils holds small helpers shared by the server and the client:
// response writers, the resty based HTTP client and id generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with statusCode and an
// application/json content type. If data cannot be marshalled the response
// becomes a 500 and the marshalling error is returned wrapped.
//
// The returned int is the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteText writes text as a text/plain body with a 200 status.
func WriteText(w http.ResponseWriter, text string) (int, error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	return w.Write([]byte(text))
}
