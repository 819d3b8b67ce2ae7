package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
)

type prescriptionRepository struct {
	db *sql.DB
}

func NewPrescriptionRepository(db *sql.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, p *domain.Prescription) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO prescriptions (id, patient_id, doctor_id, date, total_minor, created_on)
	          VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING created_on`
	if err := tx.QueryRowContext(ctx, query, p.ID, p.PatientID, p.DoctorID, p.Date, p.TotalMinor).Scan(&p.CreatedOn); err != nil {
		return err
	}

	lineQuery := `INSERT INTO prescription_lines (id, prescription_id, medication_id, quantity, dosage_instruction, unit_price_minor, subtotal_minor, line_no)
	              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i := range p.Lines {
		ln := &p.Lines[i]
		ln.PrescriptionID = p.ID
		if _, err := tx.ExecContext(ctx, lineQuery, ln.ID, ln.PrescriptionID, ln.MedicationID, ln.Quantity, ln.DosageInstruction, ln.UnitPriceMinor, ln.SubtotalMinor, ln.LineNo); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id string) (*domain.Prescription, error) {
	p := &domain.Prescription{}
	var date time.Time
	query := `SELECT id, patient_id, doctor_id, date, total_minor, created_on FROM prescriptions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.PatientID, &p.DoctorID, &date, &p.TotalMinor, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("prescription %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	p.Date = date.Format("2006-01-02")

	lines, err := r.loadLines(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	p.Lines = lines
	return p, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *prescriptionRepository) loadLines(ctx context.Context, q querier, prescriptionID string) ([]domain.PrescriptionLine, error) {
	query := `SELECT l.id, l.prescription_id, l.medication_id, COALESCE(m.name, ''), l.quantity, l.dosage_instruction, l.unit_price_minor, l.subtotal_minor, l.line_no
	          FROM prescription_lines l
	          LEFT JOIN medications m ON m.id = l.medication_id
	          WHERE l.prescription_id = $1 ORDER BY l.line_no`
	rows, err := q.QueryContext(ctx, query, prescriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.PrescriptionLine
	for rows.Next() {
		var ln domain.PrescriptionLine
		if err := rows.Scan(&ln.ID, &ln.PrescriptionID, &ln.MedicationID, &ln.MedicationName, &ln.Quantity, &ln.DosageInstruction, &ln.UnitPriceMinor, &ln.SubtotalMinor, &ln.LineNo); err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Prescription, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM prescriptions WHERE patient_id = $1`, patientID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, patient_id, doctor_id, date, total_minor, created_on
	          FROM prescriptions WHERE patient_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, patientID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var prescriptions []domain.Prescription
	for rows.Next() {
		var p domain.Prescription
		var date time.Time
		if err := rows.Scan(&p.ID, &p.PatientID, &p.DoctorID, &date, &p.TotalMinor, &p.CreatedOn); err != nil {
			return nil, 0, err
		}
		p.Date = date.Format("2006-01-02")
		prescriptions = append(prescriptions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range prescriptions {
		lines, err := r.loadLines(ctx, r.db, prescriptions[i].ID)
		if err != nil {
			return nil, 0, err
		}
		prescriptions[i].Lines = lines
	}
	return prescriptions, count, nil
}

// Delete removes the prescription and its lines and restores stock for
// every line, all inside one transaction (the inverse of finalize).
func (r *prescriptionRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM prescriptions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFound("prescription %s not found", id)
	}

	restoreQuery := `UPDATE medications m SET stock = m.stock + l.quantity, updated_on = NOW()
	                 FROM prescription_lines l
	                 WHERE l.prescription_id = $1 AND m.id = l.medication_id`
	if _, err := tx.ExecContext(ctx, restoreQuery, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM prescription_lines WHERE prescription_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM prescriptions WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}
