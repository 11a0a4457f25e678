package mysql

import (
	"io"

	"log/slog"

	"github.com/pauloatx/page-teste02/internal/db"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

// MySQLRepo implements repository.RequestRepo against a MySQL store.
type MySQLRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

var _ repository.RequestRepo = (*MySQLRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *MySQLRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &MySQLRepo{conn: conn, logger: logger}
}
