package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// detailResponse is the error body shape the browser client expects.
func detailResponse(msg string) map[string]string {
	return map[string]string{"detail": msg}
}
