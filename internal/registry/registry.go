// Package registry implements the reservation registry, the component that
// owns the reservation lifecycle. It composes guest lookup, room lookup and
// reservation storage: writes are validated and defaulted before they reach
// the store, reads come back as joined views, and every successful write
// publishes a lifecycle event.
//
// Referential integrity is deliberately not enforced: a reservation may
// reference a guest or room identifier that does not resolve. The registry
// only surfaces that as a log warning so previously accepted inputs keep
// being accepted.
package registry

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// Registry groups the repositories needed to manage reservations. All
// operations touch exactly one reservation row, so no transaction or
// cross-record rollback is ever needed; storage faults are single-attempt
// and propagate to the caller unchanged.
type Registry struct {
	guests       *repository.GuestRepo
	rooms        *repository.RoomRepo
	reservations *repository.ReservationRepo

	// publish sends a lifecycle event to the broker. May be nil, in
	// which case events are disabled (tests, broker-less deployments).
	publish func(ctx context.Context, ev queue.ReservationEvent) error
}

// New constructs a Registry. The repositories must be non-nil; publish
// may be nil to disable event publication.
func New(guests *repository.GuestRepo, rooms *repository.RoomRepo, reservations *repository.ReservationRepo, publish func(context.Context, queue.ReservationEvent) error) *Registry {
	if guests == nil || rooms == nil || reservations == nil {
		panic("nil repository passed to registry.New")
	}
	return &Registry{
		guests:       guests,
		rooms:        rooms,
		reservations: reservations,
		publish:      publish,
	}
}

// CreateReservation validates the input, defaults the status to active,
// inserts the record and returns it with the assigned identifier. The
// guest and room references are accepted as-is; when they do not resolve
// a warning is logged and the write proceeds. Nothing is written when
// validation fails.
func (r *Registry) CreateReservation(ctx context.Context, in validate.ReservationInput) (*model.Reservation, error) {
	if err := validate.Reservation(&in); err != nil {
		return nil, err
	}
	r.warnDangling(ctx, in.GuestID, in.RoomID)
	rv := &model.Reservation{
		GuestID:  in.GuestID,
		RoomID:   in.RoomID,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Status:   in.Status,
	}
	if err := r.reservations.Create(ctx, rv); err != nil {
		return nil, err
	}
	r.publishEvent(queue.ActionCreated, rv)
	return rv, nil
}

// UpdateReservation validates the input and replaces the full record at
// id. Every field is overwritten, so callers must resend unchanged
// values; there is no partial update. It returns
// repository.ErrReservationNotFound when no record has that identifier.
func (r *Registry) UpdateReservation(ctx context.Context, id uint64, in validate.ReservationInput) (*model.Reservation, error) {
	if err := validate.Reservation(&in); err != nil {
		return nil, err
	}
	r.warnDangling(ctx, in.GuestID, in.RoomID)
	rv := &model.Reservation{
		ID:       id,
		GuestID:  in.GuestID,
		RoomID:   in.RoomID,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Status:   in.Status,
	}
	if err := r.reservations.Update(ctx, rv); err != nil {
		return nil, err
	}
	r.publishEvent(queue.ActionUpdated, rv)
	return rv, nil
}

// DeleteReservation removes the record at id, returning
// repository.ErrReservationNotFound when no row existed. Deleting an
// already-deleted identifier fails the same way.
func (r *Registry) DeleteReservation(ctx context.Context, id uint64) error {
	if err := r.reservations.Delete(ctx, id); err != nil {
		return err
	}
	r.publishEvent(queue.ActionDeleted, &model.Reservation{ID: id})
	return nil
}

// GetReservation returns the reservation at id enriched with guest and
// room display fields. Dangling references yield nil joined fields.
func (r *Registry) GetReservation(ctx context.Context, id uint64) (*model.ReservationDetail, error) {
	return r.reservations.GetDetailedByID(ctx, id)
}

// ListReservations returns all reservations as joined views ordered by
// check-in date, most recent first.
func (r *Registry) ListReservations(ctx context.Context) ([]*model.ReservationDetail, error) {
	return r.reservations.ListDetailed(ctx)
}

// warnDangling logs when a reservation write references a guest or room
// that does not exist. The check is advisory only: lookups that fail for
// any reason never block the write.
func (r *Registry) warnDangling(ctx context.Context, guestID, roomID uint64) {
	if _, err := r.guests.GetByID(ctx, guestID); errors.Is(err, repository.ErrGuestNotFound) {
		log.Printf("registry: reservation references missing guest id=%d", guestID)
	}
	if _, err := r.rooms.GetByID(ctx, roomID); errors.Is(err, repository.ErrRoomNotFound) {
		log.Printf("registry: reservation references missing room id=%d", roomID)
	}
}

// publishEvent sends a lifecycle event in the background. Publication is
// fire-and-forget: the request that triggered it has already succeeded,
// and the publisher logs its own failures.
func (r *Registry) publishEvent(action string, rv *model.Reservation) {
	if r.publish == nil {
		return
	}
	ev := queue.ReservationEvent{
		Action:        action,
		ReservationID: rv.ID,
		GuestID:       rv.GuestID,
		RoomID:        rv.RoomID,
		CheckIn:       rv.CheckIn,
		CheckOut:      rv.CheckOut,
		Status:        rv.Status,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = r.publish(ctx, ev)
	}()
}
