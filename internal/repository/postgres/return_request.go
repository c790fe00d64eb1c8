package postgres

import (
	"context"
	"database/sql"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository"

	"github.com/lib/pq"
)

type returnRequestRepository struct {
	db *sql.DB
}

func NewReturnRequestRepository(db *sql.DB) repository.ReturnRequestRepository {
	return &returnRequestRepository{db: db}
}

const returnColumns = `id, order_id, user_id, photo_keys, bank_name, bank_account_name, bank_account_number, status, COALESCE(admin_note, ''), created_on, resolved_on`

func scanReturn(row interface{ Scan(...any) error }, rr *domain.ReturnRequest) error {
	return row.Scan(&rr.ID, &rr.OrderID, &rr.UserID, pq.Array(&rr.PhotoKeys), &rr.BankName, &rr.BankAccountName, &rr.BankAccountNumber, &rr.Status, &rr.AdminNote, &rr.CreatedOn, &rr.ResolvedOn)
}

func (r *returnRequestRepository) Create(ctx context.Context, rr *domain.ReturnRequest) error {
	rr.CreatedOn = time.Now()
	rr.Status = domain.ReturnStatusPending
	query := `INSERT INTO return_requests (order_id, user_id, photo_keys, bank_name, bank_account_name, bank_account_number, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rr.OrderID, rr.UserID, pq.Array(rr.PhotoKeys), rr.BankName, rr.BankAccountName, rr.BankAccountNumber, rr.Status, rr.CreatedOn).Scan(&rr.ID)
}

func (r *returnRequestRepository) GetByID(ctx context.Context, id int32) (*domain.ReturnRequest, error) {
	rr := &domain.ReturnRequest{}
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE id = $1`
	if err := scanReturn(r.db.QueryRowContext(ctx, query, id), rr); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rr, nil
}

func (r *returnRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ReturnRequest
	for rows.Next() {
		var rr domain.ReturnRequest
		if err := scanReturn(rows, &rr); err != nil {
			return nil, err
		}
		reqs = append(reqs, rr)
	}
	return reqs, rows.Err()
}

func (r *returnRequestRepository) ListByStatus(ctx context.Context, status string, page, pageSize int32) ([]domain.ReturnRequest, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE ($1 = '' OR status = $1) ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reqs []domain.ReturnRequest
	for rows.Next() {
		var rr domain.ReturnRequest
		if err := scanReturn(rows, &rr); err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM return_requests WHERE ($1 = '' OR status = $1)`, status).Scan(&count); err != nil {
		return nil, 0, err
	}
	return reqs, count, nil
}

func (r *returnRequestRepository) Resolve(ctx context.Context, id int32, status domain.ReturnStatus, adminNote string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE return_requests SET status = $1, admin_note = $2, resolved_on = $3 WHERE id = $4 AND status = 'PENDING'`,
		status, adminNote, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *returnRequestRepository) CountPending(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM return_requests WHERE status = 'PENDING'`).Scan(&count)
	return count, err
}
