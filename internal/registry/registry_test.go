package registry

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

var guestCols = []string{"id", "name", "email", "phone", "custom_fields"}
var roomCols = []string{"id", "number", "type", "status", "price"}

// newRegistry wires a registry over a single mocked DB. publish may be
// nil to disable events.
func newRegistry(t *testing.T, publish func(context.Context, queue.ReservationEvent) error) (*Registry, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	reg := New(
		repository.NewGuestRepo(db),
		repository.NewRoomRepo(db),
		repository.NewReservationRepo(db),
		publish,
	)
	return reg, mock
}

// expectLookups queues the advisory guest and room existence checks. The
// rows may be empty to simulate a dangling reference; the write proceeds
// either way.
func expectLookups(mock sqlmock.Sqlmock, guestRows, roomRows *sqlmock.Rows) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM guests WHERE id = ?")).WillReturnRows(guestRows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE id = ?")).WillReturnRows(roomRows)
}

func existingGuest() *sqlmock.Rows {
	return sqlmock.NewRows(guestCols).AddRow(1, "Alice", nil, nil, nil)
}

func existingRoom() *sqlmock.Rows {
	return sqlmock.NewRows(roomCols).AddRow(1, "101", nil, "available", nil)
}

func TestCreateReservationDefaultsStatusActive(t *testing.T) {
	reg, mock := newRegistry(t, nil)
	expectLookups(mock, existingGuest(), existingRoom())
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(1, 1, "2024-03-01", "2024-03-05", "active").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rv, err := reg.CreateReservation(context.Background(), validate.ReservationInput{
		GuestID: 1, RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rv.ID)
	assert.Equal(t, model.ReservationActive, rv.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationEchoesSuppliedStatus(t *testing.T) {
	reg, mock := newRegistry(t, nil)
	expectLookups(mock, existingGuest(), existingRoom())
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(1, 1, "2024-03-01", "2024-03-05", "completed").
		WillReturnResult(sqlmock.NewResult(2, 1))

	rv, err := reg.CreateReservation(context.Background(), validate.ReservationInput{
		GuestID: 1, RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05", Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReservationCompleted, rv.Status)
}

func TestCreateReservationValidationWritesNothing(t *testing.T) {
	// No expectations are queued: a validation failure must not touch
	// storage at all, so no identifier is consumed.
	reg, mock := newRegistry(t, nil)

	_, err := reg.CreateReservation(context.Background(), validate.ReservationInput{
		GuestID: 1, RoomID: 1, CheckIn: "2024-03-01",
	})
	require.Error(t, err)
	ve, ok := err.(*validate.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "check_out", ve.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationToleratesDanglingRoom(t *testing.T) {
	// The room lookup comes back empty; the create still succeeds and
	// stores the reference as-is.
	reg, mock := newRegistry(t, nil)
	expectLookups(mock, existingGuest(), sqlmock.NewRows(roomCols))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(1, 9999, "2024-03-01", "2024-03-05", "active").
		WillReturnResult(sqlmock.NewResult(3, 1))

	rv, err := reg.CreateReservation(context.Background(), validate.ReservationInput{
		GuestID: 1, RoomID: 9999, CheckIn: "2024-03-01", CheckOut: "2024-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(9999), rv.RoomID)
}

func TestCreateReservationPublishesEvent(t *testing.T) {
	events := make(chan queue.ReservationEvent, 1)
	reg, mock := newRegistry(t, func(_ context.Context, ev queue.ReservationEvent) error {
		events <- ev
		return nil
	})
	expectLookups(mock, existingGuest(), existingRoom())
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnResult(sqlmock.NewResult(5, 1))

	_, err := reg.CreateReservation(context.Background(), validate.ReservationInput{
		GuestID: 1, RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05",
	})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, queue.ActionCreated, ev.Action)
		assert.Equal(t, uint64(5), ev.ReservationID)
		assert.Equal(t, "active", ev.Status)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestUpdateReservationReplacesFullRecord(t *testing.T) {
	reg, mock := newRegistry(t, nil)
	expectLookups(mock, existingGuest(), existingRoom())
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
		WithArgs(1, 1, "2024-03-01", "2024-03-05", "cancelled", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rv, err := reg.UpdateReservation(context.Background(), 7, validate.ReservationInput{
		GuestID: 1, RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05", Status: "cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), rv.ID)
	assert.Equal(t, model.ReservationCancelled, rv.Status)
}

func TestUpdateReservationNotFound(t *testing.T) {
	reg, mock := newRegistry(t, nil)
	expectLookups(mock, existingGuest(), existingRoom())
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := reg.UpdateReservation(context.Background(), 404, validate.ReservationInput{
		GuestID: 1, RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05",
	})
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}

func TestDeleteReservationTwiceIsNotFound(t *testing.T) {
	reg, mock := newRegistry(t, nil)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, reg.DeleteReservation(context.Background(), 7))
	assert.ErrorIs(t, reg.DeleteReservation(context.Background(), 7), repository.ErrReservationNotFound)
}

func TestGetReservationNotFound(t *testing.T) {
	reg, mock := newRegistry(t, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "guest_id", "room_id", "check_in", "check_out", "status",
			"guest_name", "guest_email", "room_number", "room_type",
		}))

	_, err := reg.GetReservation(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}
