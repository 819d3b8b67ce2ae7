package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
)

type medicationRepository struct {
	db *sql.DB
}

func NewMedicationRepository(db *sql.DB) repository.MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) GetByID(ctx context.Context, id string) (*domain.Medication, error) {
	m := &domain.Medication{}
	query := `SELECT id, name, unit_price_minor, stock, created_on, updated_on FROM medications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.UnitPriceMinor, &m.Stock, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("medication %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *medicationRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Medication, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM medications`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, unit_price_minor, stock, created_on, updated_on
	          FROM medications ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var meds []domain.Medication
	for rows.Next() {
		var m domain.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.UnitPriceMinor, &m.Stock, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, 0, err
		}
		meds = append(meds, m)
	}
	return meds, count, rows.Err()
}

// Reserve is the single atomic check-then-decrement of the stock ledger.
// The stock >= quantity guard and the decrement are one statement, so
// concurrent reserves can never both read the same stale stock value.
func (r *medicationRepository) Reserve(ctx context.Context, id string, quantity int32) error {
	query := `UPDATE medications SET stock = stock - $2, updated_on = NOW() WHERE id = $1 AND stock >= $2`
	res, err := r.db.ExecContext(ctx, query, id, quantity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM medications WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFound("medication %s not found", id)
		}
		return domain.NewConflict("insufficient stock for medication %s", id)
	}
	return nil
}

func (r *medicationRepository) Restore(ctx context.Context, id string, quantity int32) error {
	query := `UPDATE medications SET stock = stock + $2, updated_on = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, quantity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("medication %s not found", id)
	}
	return nil
}

func (r *medicationRepository) ListBelowStock(ctx context.Context, threshold int32) ([]domain.Medication, error) {
	query := `SELECT id, name, unit_price_minor, stock, created_on, updated_on
	          FROM medications WHERE stock < $1 ORDER BY stock, name`
	rows, err := r.db.QueryContext(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meds []domain.Medication
	for rows.Next() {
		var m domain.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.UnitPriceMinor, &m.Stock, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, err
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}
