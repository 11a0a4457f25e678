package mock

import (
	"context"
	"sync"

	"github.com/pauloatx/page-teste02/pkg/models"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

// Test helpers and mocks

// RequestRepo is an in-memory repository.RequestRepo for handler tests.
type RequestRepo struct {
	mu     sync.Mutex
	nextID int64

	Stored      []models.ServiceRequest
	CreateErr   error
	ListErr     error
	UniqueEmail bool
}

var _ repository.RequestRepo = (*RequestRepo)(nil)

func NewRequestRepo() *RequestRepo {
	return &RequestRepo{}
}

func (m *RequestRepo) Create(ctx context.Context, sr *models.ServiceRequest) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UniqueEmail {
		for _, s := range m.Stored {
			if s.Email == sr.Email {
				return 0, repository.ErrDuplicateEmail
			}
		}
	}

	m.nextID++
	stored := *sr
	stored.ID = m.nextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *RequestRepo) List(ctx context.Context) ([]models.ServiceRequest, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.ServiceRequest, len(m.Stored))
	copy(out, m.Stored)
	return out, nil
}
