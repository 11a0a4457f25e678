package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/pauloatx/page-teste02/internal/validate"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

type AtendimentosHandler struct {
	repo         repository.RequestRepo
	maxBodyBytes int64
}

// NewAtendimentosHandler creates an AtendimentosHandler over the given store.
func NewAtendimentosHandler(repo repository.RequestRepo, maxBodyBytes int64) *AtendimentosHandler {
	return &AtendimentosHandler{repo: repo, maxBodyBytes: maxBodyBytes}
}

func (h *AtendimentosHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var sub validate.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		writeJSON(w, validationResponse{Errors: []validate.FieldError{
			{Field: "body", Message: "invalid JSON"},
		}}, http.StatusBadRequest)
		return
	}

	if errs := validate.Check(&sub); len(errs) > 0 {
		writeJSON(w, validationResponse{Errors: errs}, http.StatusBadRequest)
		return
	}

	sr := sub.Record()
	id, err := h.repo.Create(r.Context(), &sr)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeError(w, "email already registered", http.StatusConflict)
			return
		}
		logger.Error("create atendimento", slog.Any("err", err))
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sr.ID = id
	if sr.ServiceDate == "" {
		// store defaulted the date; report today the same way the insert did
		sr.ServiceDate = time.Now().Format("2006-01-02")
	}

	writeJSON(w, sr, http.StatusCreated)
}

func (h *AtendimentosHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		logger.Error("list atendimentos", slog.Any("err", err))
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, items, http.StatusOK)
}
