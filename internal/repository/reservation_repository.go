package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// selectDetail is the joined projection shared by GetDetailedByID and
// ListDetailed. Guests and rooms are LEFT JOINed so a reservation whose
// reference is dangling still comes back, with NULL display fields.
const selectDetail = `
	SELECT r.id, r.guest_id, r.room_id, r.check_in, r.check_out, r.status,
	       g.name AS guest_name, g.email AS guest_email,
	       rm.number AS room_number, rm.type AS room_type
	FROM reservations r
	LEFT JOIN guests g ON g.id = r.guest_id
	LEFT JOIN rooms rm ON rm.id = r.room_id`

// ReservationRepo encapsulates all database queries related to
// reservations, including the joined detail views consumed by the API.
// Like the other repositories it holds the injected connection pool and
// imposes no locking of its own: concurrent updates to the same row are
// last-write-wins through the database's serialization.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo constructs a ReservationRepo with the provided DB
// handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// Create inserts a new reservation. The guest and room references are
// stored as given without any existence check; any positive identifier
// is accepted. On success the reservation's ID field is populated with
// the auto-generated value.
func (r *ReservationRepo) Create(ctx context.Context, rv *model.Reservation) error {
	const q = "INSERT INTO reservations (guest_id, room_id, check_in, check_out, status) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, rv.GuestID, rv.RoomID, rv.CheckIn, rv.CheckOut, rv.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return nil
}

// GetByID fetches the bare (unjoined) reservation row, returning
// ErrReservationNotFound when no row exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = "SELECT id, guest_id, room_id, check_in, check_out, status FROM reservations WHERE id = ?"
	var rv model.Reservation
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rv.ID, &rv.GuestID, &rv.RoomID, &rv.CheckIn, &rv.CheckOut, &rv.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// GetDetailedByID fetches a single reservation enriched with guest and
// room display fields. Dangling references yield nil joined fields
// rather than an error; only a missing reservation row itself produces
// ErrReservationNotFound.
func (r *ReservationRepo) GetDetailedByID(ctx context.Context, id uint64) (*model.ReservationDetail, error) {
	q := selectDetail + " WHERE r.id = ?"
	var d model.ReservationDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.GuestID, &d.RoomID, &d.CheckIn, &d.CheckOut, &d.Status,
		&d.GuestName, &d.GuestEmail, &d.RoomNumber, &d.RoomType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListDetailed returns all reservations as joined detail records,
// ordered by check-in date descending (most recent stay first). The
// dates are YYYY-MM-DD text, so lexicographic descending order is
// chronological descending order.
func (r *ReservationRepo) ListDetailed(ctx context.Context) ([]*model.ReservationDetail, error) {
	q := selectDetail + " ORDER BY r.check_in DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ReservationDetail
	for rows.Next() {
		d := new(model.ReservationDetail)
		if err := rows.Scan(
			&d.ID, &d.GuestID, &d.RoomID, &d.CheckIn, &d.CheckOut, &d.Status,
			&d.GuestName, &d.GuestEmail, &d.RoomNumber, &d.RoomType,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the full record at rv.ID. All five writable columns
// are always overwritten, so callers must resend unchanged fields. It
// returns ErrReservationNotFound when no row was affected.
func (r *ReservationRepo) Update(ctx context.Context, rv *model.Reservation) error {
	const q = "UPDATE reservations SET guest_id = ?, room_id = ?, check_in = ?, check_out = ?, status = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, rv.GuestID, rv.RoomID, rv.CheckIn, rv.CheckOut, rv.Status, rv.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// Delete removes a reservation by ID, returning ErrReservationNotFound
// when no row was affected. A second delete of the same identifier
// therefore fails the same way as deleting one that never existed.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM reservations WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}
