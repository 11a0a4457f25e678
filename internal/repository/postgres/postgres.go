package postgres

import (
	"io"

	"log/slog"

	"github.com/pauloatx/page-teste02/internal/db"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

// PostgresRepo implements repository.RequestRepo against a PostgreSQL store.
type PostgresRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

var _ repository.RequestRepo = (*PostgresRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *PostgresRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &PostgresRepo{conn: conn, logger: logger}
}
