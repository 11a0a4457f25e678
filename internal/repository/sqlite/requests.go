package sqlite

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	sqlitelib "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/pauloatx/page-teste02/pkg/models"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

func (r *SQLiteRepo) Create(ctx context.Context, sr *models.ServiceRequest) (int64, error) {
	if sr == nil {
		return 0, fmt.Errorf("service request is nil")
	}

	var date any
	if sr.ServiceDate != "" {
		date = sr.ServiceDate
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO atendimentos (name, email, phone, service_description, service_date) VALUES (?, ?, ?, ?, COALESCE(?, date('now')))`,
		sr.Name, sr.Email, sr.Phone, sr.ServiceDescription, date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) List(ctx context.Context) ([]models.ServiceRequest, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, name, email, phone, service_description, service_date FROM atendimentos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ServiceRequest{}
	for rows.Next() {
		var sr models.ServiceRequest
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.Email, &sr.Phone, &sr.ServiceDescription, &sr.ServiceDate); err != nil {
			return nil, err
		}

		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("list atendimentos", slog.Any("err", err))
		return nil, err
	}

	return out, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlitelib.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
