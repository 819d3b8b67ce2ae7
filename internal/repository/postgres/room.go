package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	rm := &domain.Room{}
	query := `SELECT id, name, class, tariff_per_day_minor, status, created_on, updated_on FROM rooms WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rm.ID, &rm.Name, &rm.Class, &rm.TariffPerDayMinor, &rm.Status, &rm.CreatedOn, &rm.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("room %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *roomRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Room, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rooms`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, class, tariff_per_day_minor, status, created_on, updated_on
	          FROM rooms ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Class, &rm.TariffPerDayMinor, &rm.Status, &rm.CreatedOn, &rm.UpdatedOn); err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, count, rows.Err()
}
