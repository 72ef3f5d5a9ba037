package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo encapsulates all database queries related to rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create inserts a new room and populates its ID with the
// auto-generated value.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const q = "INSERT INTO rooms (number, type, status, price) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, rm.Number, rm.Type, rm.Status, rm.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	return nil
}

// GetByID fetches a room by its ID, returning ErrRoomNotFound when no
// row exists.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = "SELECT id, number, type, status, price FROM rooms WHERE id = ?"
	var rm model.Room
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rm.ID, &rm.Number, &rm.Type, &rm.Status, &rm.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// List returns all rooms ordered ascending by room number. Numbers are
// text, so "12" sorts before "9".
func (r *RoomRepo) List(ctx context.Context) ([]*model.Room, error) {
	const q = "SELECT id, number, type, status, price FROM rooms ORDER BY number"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Room
	for rows.Next() {
		rm := new(model.Room)
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Type, &rm.Status, &rm.Price); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the full record at rm.ID, returning ErrRoomNotFound
// when no row was affected.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	const q = "UPDATE rooms SET number = ?, type = ?, status = ?, price = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, rm.Number, rm.Type, rm.Status, rm.Price, rm.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes a room by ID without cascading into reservations. It
// returns ErrRoomNotFound when no row was affected.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM rooms WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
