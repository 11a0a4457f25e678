package sqlite

import (
	"io"

	"log/slog"

	"github.com/pauloatx/page-teste02/internal/db"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

// SQLiteRepo implements repository.RequestRepo using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interface.
var _ repository.RequestRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}
