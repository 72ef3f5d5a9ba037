package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

var detailCols = []string{
	"id", "guest_id", "room_id", "check_in", "check_out", "status",
	"guest_name", "guest_email", "room_number", "room_type",
}

func newReservationMock(t *testing.T) (*ReservationRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReservationRepo(db), mock
}

func TestReservationCreateAssignsID(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations (guest_id, room_id, check_in, check_out, status) VALUES (?, ?, ?, ?, ?)")).
		WithArgs(1, 2, "2024-01-10", "2024-01-12", "active").
		WillReturnResult(sqlmock.NewResult(7, 1))

	rv := &model.Reservation{GuestID: 1, RoomID: 2, CheckIn: "2024-01-10", CheckOut: "2024-01-12", Status: "active"}
	require.NoError(t, repo.Create(context.Background(), rv))
	assert.Equal(t, uint64(7), rv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetByIDRoundTrip(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, guest_id, room_id, check_in, check_out, status FROM reservations WHERE id = ?")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "room_id", "check_in", "check_out", "status"}).
			AddRow(7, 1, 2, "2024-01-10", "2024-01-12", "active"))

	rv, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rv.GuestID)
	assert.Equal(t, uint64(2), rv.RoomID)
	assert.Equal(t, "2024-01-10", rv.CheckIn)
	assert.Equal(t, "2024-01-12", rv.CheckOut)
	assert.Equal(t, model.ReservationActive, rv.Status)
}

func TestReservationGetDetailedNotFound(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = ?")).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows(detailCols))

	_, err := repo.GetDetailedByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestReservationGetDetailedDanglingReferences(t *testing.T) {
	// A reservation whose guest and room were deleted still reads back;
	// the joined display fields are nil, not an error.
	repo, mock := newReservationMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN rooms rm ON rm.id = r.room_id")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(detailCols).
			AddRow(7, 99, 88, "2024-01-10", "2024-01-12", "active", nil, nil, nil, nil))

	d, err := repo.GetDetailedByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), d.GuestID)
	assert.Nil(t, d.GuestName)
	assert.Nil(t, d.GuestEmail)
	assert.Nil(t, d.RoomNumber)
	assert.Nil(t, d.RoomType)
}

func TestReservationListDetailedOrder(t *testing.T) {
	repo, mock := newReservationMock(t)

	rows := sqlmock.NewRows(detailCols).
		AddRow(2, 1, 1, "2024-02-01", "2024-02-03", "active", "Alice", nil, "101", nil).
		AddRow(3, 1, 1, "2024-01-20", "2024-01-22", "completed", "Alice", nil, "101", nil).
		AddRow(1, 1, 1, "2024-01-05", "2024-01-07", "cancelled", "Alice", nil, "101", nil)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.check_in DESC")).WillReturnRows(rows)

	out, err := repo.ListDetailed(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "2024-02-01", out[0].CheckIn)
	assert.Equal(t, "2024-01-20", out[1].CheckIn)
	assert.Equal(t, "2024-01-05", out[2].CheckIn)
	require.NotNil(t, out[0].GuestName)
	assert.Equal(t, "Alice", *out[0].GuestName)
}

func TestReservationUpdateNotFound(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rv := &model.Reservation{ID: 404, GuestID: 1, RoomID: 1, CheckIn: "2024-01-10", CheckOut: "2024-01-12", Status: "active"}
	assert.ErrorIs(t, repo.Update(context.Background(), rv), ErrReservationNotFound)
}

func TestReservationDeleteIsTerminal(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.ErrorIs(t, repo.Delete(context.Background(), 7), ErrReservationNotFound)
}
