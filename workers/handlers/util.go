package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/log"
)

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn("Cannot write JSON response", "code", code, "err", err)
	}
}

func responseError(w http.ResponseWriter, message string, code int) {
	responseJSON(w, &APIResponse{Status: "error", Message: message}, code)
}
