package mysql

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/pauloatx/page-teste02/pkg/models"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

// ER_DUP_ENTRY
const duplicateEntryErrNo = 1062

func (r *MySQLRepo) Create(ctx context.Context, sr *models.ServiceRequest) (int64, error) {
	if sr == nil {
		return 0, fmt.Errorf("service request is nil")
	}

	var date any
	if sr.ServiceDate != "" {
		date = sr.ServiceDate
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO atendimentos (name, email, phone, service_description, service_date) VALUES (?, ?, ?, ?, COALESCE(?, CURRENT_DATE))`,
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

func (r *MySQLRepo) List(ctx context.Context) ([]models.ServiceRequest, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, name, email, phone, service_description, DATE_FORMAT(service_date, '%Y-%m-%d') FROM atendimentos ORDER BY id`)
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
	var me *gomysql.MySQLError
	return errors.As(err, &me) && me.Number == duplicateEntryErrNo
}
