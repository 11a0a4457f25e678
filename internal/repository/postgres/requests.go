package postgres

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pauloatx/page-teste02/pkg/models"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

// unique_violation
const uniqueViolationCode = "23505"

func (r *PostgresRepo) Create(ctx context.Context, sr *models.ServiceRequest) (int64, error) {
	if sr == nil {
		return 0, fmt.Errorf("service request is nil")
	}

	var date any
	if sr.ServiceDate != "" {
		date = sr.ServiceDate
	}

	// RETURNING also reports the effective date when the store defaulted it
	row := r.conn.QueryRow(ctx,
		`INSERT INTO atendimentos (name, email, phone, service_description, service_date) VALUES ($1, $2, $3, $4, COALESCE($5::date, CURRENT_DATE)) RETURNING id, to_char(service_date, 'YYYY-MM-DD')`,
		sr.Name, sr.Email, sr.Phone, sr.ServiceDescription, date,
	)

	var id int64
	if err := row.Scan(&id, &sr.ServiceDate); err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, err
	}

	return id, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]models.ServiceRequest, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, name, email, phone, service_description, to_char(service_date, 'YYYY-MM-DD') FROM atendimentos ORDER BY id`)
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
	var pe *pgconn.PgError
	return errors.As(err, &pe) && pe.Code == uniqueViolationCode
}
