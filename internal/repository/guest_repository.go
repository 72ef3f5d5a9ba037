package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// GuestRepo encapsulates all database queries related to guests. It
// depends on a sql.DB connection which is constructed at startup and
// injected, allowing tests to substitute a mock.
type GuestRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewGuestRepo constructs a GuestRepo with the provided DB handle. There
// is no initialization logic beyond assigning the field.
func NewGuestRepo(db *sql.DB) *GuestRepo {
	return &GuestRepo{db: db}
}

// Create inserts a new guest. On success the guest's ID field is
// populated with the auto-generated value; the insert itself never
// fails except on a storage fault.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	const q = "INSERT INTO guests (name, email, phone, custom_fields) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, g.Name, g.Email, g.Phone, g.CustomFields)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// GetByID fetches a guest by its ID. It returns ErrGuestNotFound if no
// row is found.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	const q = "SELECT id, name, email, phone, custom_fields FROM guests WHERE id = ?"
	var g model.Guest
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.CustomFields); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}

// List returns all guests ordered ascending by name.
func (r *GuestRepo) List(ctx context.Context) ([]*model.Guest, error) {
	const q = "SELECT id, name, email, phone, custom_fields FROM guests ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Guest
	for rows.Next() {
		g := new(model.Guest)
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.CustomFields); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the full record at g.ID. Every column is overwritten;
// there is no partial update, so callers must resend unchanged fields.
// It returns ErrGuestNotFound when no row was affected.
func (r *GuestRepo) Update(ctx context.Context, g *model.Guest) error {
	const q = "UPDATE guests SET name = ?, email = ?, phone = ?, custom_fields = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, g.Name, g.Email, g.Phone, g.CustomFields, g.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGuestNotFound
	}
	return nil
}

// Delete removes a guest by ID. Deletion does not cascade: reservations
// referencing the guest keep their now-dangling reference. It returns
// ErrGuestNotFound when no row was affected.
func (r *GuestRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM guests WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGuestNotFound
	}
	return nil
}
