package middleware

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError responds with the same envelope the REST handlers use.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}
