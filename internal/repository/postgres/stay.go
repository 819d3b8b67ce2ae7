package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"

	"github.com/lib/pq"
)

type stayRepository struct {
	db *sql.DB
}

func NewStayRepository(db *sql.DB) repository.StayRepository {
	return &stayRepository{db: db}
}

// Admit performs the three writes of an admission (claim room, create stay,
// flip patient status) in one transaction. The room claim is a conditional
// update and the one-active-stay-per-patient rule is backed by a partial
// unique index, so concurrent admits serialize instead of racing.
func (r *stayRepository) Admit(ctx context.Context, stay *domain.InpatientStay) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	claimQuery := `UPDATE rooms SET status = $2, updated_on = NOW() WHERE id = $1 AND status = $3`
	res, err := tx.ExecContext(ctx, claimQuery, stay.RoomID, domain.RoomStatusOccupied, domain.RoomStatusAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)`, stay.RoomID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFound("room %s not found", stay.RoomID)
		}
		return domain.NewConflict("room %s is not available", stay.RoomID)
	}

	insertQuery := `INSERT INTO stays (id, patient_id, room_id, admit_date, status, created_on, updated_on)
	                VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING created_on, updated_on`
	err = tx.QueryRowContext(ctx, insertQuery, stay.ID, stay.PatientID, stay.RoomID, stay.AdmitDate, domain.StayStatusActive).Scan(&stay.CreatedOn, &stay.UpdatedOn)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// unique_violation on the one-active-stay-per-patient index
			return domain.NewConflict("patient %s already has an active stay", stay.PatientID)
		}
		return err
	}
	stay.Status = domain.StayStatusActive

	patientQuery := `UPDATE patients SET admission_status = $2, updated_on = NOW() WHERE id = $1`
	res, err = tx.ExecContext(ctx, patientQuery, stay.PatientID, domain.AdmissionStatusInpatient)
	if err != nil {
		return err
	}
	if n, err = res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.NewNotFound("patient %s not found", stay.PatientID)
	}

	return tx.Commit()
}

// Discharge locks the stay row, verifies it is still active, then frees the
// room and flips the patient back to outpatient in the same transaction.
func (r *stayRepository) Discharge(ctx context.Context, stayID, dischargeDate string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var patientID, roomID string
	var status domain.StayStatus
	lockQuery := `SELECT patient_id, room_id, status FROM stays WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, lockQuery, stayID).Scan(&patientID, &roomID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound("stay %s not found", stayID)
	}
	if err != nil {
		return err
	}
	if status != domain.StayStatusActive {
		return domain.NewState("stay %s is already discharged", stayID)
	}

	updateQuery := `UPDATE stays SET status = $2, discharge_date = $3, updated_on = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, updateQuery, stayID, domain.StayStatusDischarged, dischargeDate); err != nil {
		return err
	}
	freeQuery := `UPDATE rooms SET status = $2, updated_on = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, freeQuery, roomID, domain.RoomStatusAvailable); err != nil {
		return err
	}
	patientQuery := `UPDATE patients SET admission_status = $2, updated_on = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, patientQuery, patientID, domain.AdmissionStatusOutpatient); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *stayRepository) GetByID(ctx context.Context, id string) (*domain.InpatientStay, error) {
	return scanStay(r.db.QueryRowContext(ctx,
		`SELECT id, patient_id, room_id, admit_date, discharge_date, status, created_on, updated_on FROM stays WHERE id = $1`, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStay(row rowScanner) (*domain.InpatientStay, error) {
	st := &domain.InpatientStay{}
	var admit time.Time
	var discharge sql.NullTime
	err := row.Scan(&st.ID, &st.PatientID, &st.RoomID, &admit, &discharge, &st.Status, &st.CreatedOn, &st.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("stay not found")
	}
	if err != nil {
		return nil, err
	}
	st.AdmitDate = admit.Format("2006-01-02")
	if discharge.Valid {
		d := discharge.Time.Format("2006-01-02")
		st.DischargeDate = &d
	}
	return st, nil
}

func (r *stayRepository) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.InpatientStay, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM stays WHERE patient_id = $1`, patientID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, patient_id, room_id, admit_date, discharge_date, status, created_on, updated_on
	          FROM stays WHERE patient_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, patientID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var stays []domain.InpatientStay
	for rows.Next() {
		st, err := scanStay(rows)
		if err != nil {
			return nil, 0, err
		}
		stays = append(stays, *st)
	}
	return stays, count, rows.Err()
}

// Delete removes a stay record. An active stay is released first so the
// room and patient status invariants survive the removal.
func (r *stayRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var patientID, roomID string
	var status domain.StayStatus
	lockQuery := `SELECT patient_id, room_id, status FROM stays WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&patientID, &roomID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound("stay %s not found", id)
	}
	if err != nil {
		return err
	}

	if status == domain.StayStatusActive {
		if _, err := tx.ExecContext(ctx, `UPDATE rooms SET status = $2, updated_on = NOW() WHERE id = $1`, roomID, domain.RoomStatusAvailable); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE patients SET admission_status = $2, updated_on = NOW() WHERE id = $1`, patientID, domain.AdmissionStatusOutpatient); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM stays WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *stayRepository) ListStatusMismatches(ctx context.Context) ([]domain.Patient, error) {
	query := `SELECT p.id, p.name, p.admission_status, p.created_on, p.updated_on
	          FROM patients p
	          WHERE (p.admission_status = $1) <> EXISTS (SELECT 1 FROM stays s WHERE s.patient_id = p.id AND s.status = $2)`
	rows, err := r.db.QueryContext(ctx, query, domain.AdmissionStatusInpatient, domain.StayStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.AdmissionStatus, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}
