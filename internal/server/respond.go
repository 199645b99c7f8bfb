package server

import (
	"net/http"

	json "github.com/goccy/go-json"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encode errors past this point cannot change the status line anymore
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message, detail string) {
	respondJSON(w, status, errorResponse{Error: message, Detail: detail})
}
