package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/support"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type supportRequestRepositoryImpl struct {
	db *database.DB
}

func NewSupportRequestRepository(db *database.DB) support.SupportRequestRepository {
	return &supportRequestRepositoryImpl{db: db}
}

// List implements support.SupportRequestRepository.
func (r *supportRequestRepositoryImpl) List(ctx context.Context, filter support.Filter) ([]support.SupportRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT * FROM support_requests WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Type != "" {
		query += fmt.Sprintf(" AND request_type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	query += " ORDER BY id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list support requests: %w", err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to scan support requests: %w", err)
	}

	requests := make([]support.SupportRequest, 0, len(maps))
	for _, m := range maps {
		requests = append(requests, support.SupportRequest(m))
	}

	return requests, nil
}
