package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/pauloatx/page-teste02/internal/validate"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors []validate.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, errorResponse{Error: msg}, status)
}
