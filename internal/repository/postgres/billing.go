package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
)

type billingRepository struct {
	db *sql.DB
}

func NewBillingRepository(db *sql.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

// Snapshot reads patient, optional stay (with room), and optional
// prescription (with lines) under one repeatable-read transaction. The
// estimator is side-effect-free, but its inputs must be mutually
// consistent — a stay discharged mid-estimate must not be half-visible.
func (r *billingRepository) Snapshot(ctx context.Context, patientID string, stayID, prescriptionID *string) (*repository.BillingSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	snap := &repository.BillingSnapshot{}

	p := &domain.Patient{}
	err = tx.QueryRowContext(ctx, `SELECT id, name, admission_status, created_on, updated_on FROM patients WHERE id = $1`, patientID).
		Scan(&p.ID, &p.Name, &p.AdmissionStatus, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("patient %s not found", patientID)
	}
	if err != nil {
		return nil, err
	}
	snap.Patient = p

	if stayID != nil {
		st, err := scanStay(tx.QueryRowContext(ctx,
			`SELECT id, patient_id, room_id, admit_date, discharge_date, status, created_on, updated_on FROM stays WHERE id = $1`, *stayID))
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return nil, domain.NewNotFound("stay %s not found", *stayID)
			}
			return nil, err
		}
		snap.Stay = st

		rm := &domain.Room{}
		err = tx.QueryRowContext(ctx, `SELECT id, name, class, tariff_per_day_minor, status, created_on, updated_on FROM rooms WHERE id = $1`, st.RoomID).
			Scan(&rm.ID, &rm.Name, &rm.Class, &rm.TariffPerDayMinor, &rm.Status, &rm.CreatedOn, &rm.UpdatedOn)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("room %s not found", st.RoomID)
		}
		if err != nil {
			return nil, err
		}
		snap.Room = rm
	}

	if prescriptionID != nil {
		pr := &domain.Prescription{}
		var date time.Time
		err = tx.QueryRowContext(ctx, `SELECT id, patient_id, doctor_id, date, total_minor, created_on FROM prescriptions WHERE id = $1`, *prescriptionID).
			Scan(&pr.ID, &pr.PatientID, &pr.DoctorID, &date, &pr.TotalMinor, &pr.CreatedOn)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("prescription %s not found", *prescriptionID)
		}
		if err != nil {
			return nil, err
		}
		pr.Date = date.Format("2006-01-02")

		lineQuery := `SELECT l.id, l.prescription_id, l.medication_id, COALESCE(m.name, ''), l.quantity, l.dosage_instruction, l.unit_price_minor, l.subtotal_minor, l.line_no
		              FROM prescription_lines l
		              LEFT JOIN medications m ON m.id = l.medication_id
		              WHERE l.prescription_id = $1 ORDER BY l.line_no`
		rows, err := tx.QueryContext(ctx, lineQuery, *prescriptionID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		for rows.Next() {
			var ln domain.PrescriptionLine
			if err := rows.Scan(&ln.ID, &ln.PrescriptionID, &ln.MedicationID, &ln.MedicationName, &ln.Quantity, &ln.DosageInstruction, &ln.UnitPriceMinor, &ln.SubtotalMinor, &ln.LineNo); err != nil {
				return nil, err
			}
			pr.Lines = append(pr.Lines, ln)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		snap.Prescription = pr
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}
