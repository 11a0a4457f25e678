package repository

import (
	"context"
	"errors"

	"github.com/pauloatx/page-teste02/pkg/models"
)

// ErrDuplicateEmail is returned by Create when the store enforces email
// uniqueness and the submitted email already exists. Concrete
// implementations translate their engine's constraint-violation error
// into this sentinel so callers never see driver error types.
var ErrDuplicateEmail = errors.New("email already registered")

// RequestRepo is the public contract for atendimento persistence.
// Consumers should depend on this interface; concrete implementations
// live under internal/repository, one per store engine.
type RequestRepo interface {
	// Create inserts one row and returns the store-assigned id. The
	// implementation fills sr.ServiceDate with the effective date when
	// the engine can report it; callers must treat an empty ServiceDate
	// after Create as "defaulted to today".
	Create(ctx context.Context, sr *models.ServiceRequest) (int64, error)

	// List returns every stored record ordered by id. An empty store
	// yields an empty slice, not an error.
	List(ctx context.Context) ([]models.ServiceRequest, error)
}
