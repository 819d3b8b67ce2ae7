package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, patient_id, prescription_id, stay_id, method, total_minor, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW()) RETURNING created_on, updated_on`
	return r.db.QueryRowContext(ctx, query, t.ID, t.PatientID, t.PrescriptionID, t.StayID, t.Method, t.TotalMinor).Scan(&t.CreatedOn, &t.UpdatedOn)
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var stayID sql.NullString
	query := `SELECT id, patient_id, prescription_id, stay_id, method, total_minor, created_on, updated_on FROM transactions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.PatientID, &t.PrescriptionID, &stayID, &t.Method, &t.TotalMinor, &t.CreatedOn, &t.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("transaction %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	if stayID.Valid {
		t.StayID = &stayID.String
	}
	return t, nil
}

func (r *transactionRepository) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM transactions WHERE patient_id = $1`, patientID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, patient_id, prescription_id, stay_id, method, total_minor, created_on, updated_on
	          FROM transactions WHERE patient_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, patientID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var stayID sql.NullString
		if err := rows.Scan(&t.ID, &t.PatientID, &t.PrescriptionID, &stayID, &t.Method, &t.TotalMinor, &t.CreatedOn, &t.UpdatedOn); err != nil {
			return nil, 0, err
		}
		if stayID.Valid {
			t.StayID = &stayID.String
		}
		txs = append(txs, t)
	}
	return txs, count, rows.Err()
}

func (r *transactionRepository) UpdateMethod(ctx context.Context, id string, method domain.PaymentMethod) error {
	res, err := r.db.ExecContext(ctx, `UPDATE transactions SET method = $2, updated_on = NOW() WHERE id = $1`, id, method)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("transaction %s not found", id)
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("transaction %s not found", id)
	}
	return nil
}
