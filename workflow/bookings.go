// Package workflow holds the client-side rules of the dashboard: reconciled
// lists, transition guards and the single-flight convention. It talks to the
// backend through narrow interfaces so the rules are testable without a bot.
package workflow

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/oybek/lalahouse/lala"
	"github.com/oybek/lalahouse/model"
)

// ErrActionInFlight rejects a second mutation on the same booking and
// action while the first one has not come back yet.
var ErrActionInFlight = errors.New("action already in flight")

var ErrUnknownBooking = errors.New("unknown booking")

type BookingAPI interface {
	ListBookings(ctx context.Context) ([]model.Booking, error)
	CreateBooking(ctx context.Context, houseID int, checkin, checkout time.Time) (*model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, status model.BookingStatus) (*model.Booking, error)
	DeleteBooking(ctx context.Context, id int) error
}

type actionKey struct {
	bookingID int
	action    string
}

// Bookings owns the local copy of the principal's bookings. The list is
// only rewritten after the backend has acknowledged a change; a failed
// call leaves it exactly as it was.
type Bookings struct {
	api BookingAPI

	mu       sync.Mutex
	items    []model.Booking
	inflight map[actionKey]struct{}
}

func NewBookings(api BookingAPI) *Bookings {
	return &Bookings{
		api:      api,
		inflight: make(map[actionKey]struct{}),
	}
}

// Load replaces the local list with the backend's, ordered by id. On any
// failure the previously loaded list stays untouched.
func (w *Bookings) Load(ctx context.Context) error {
	fetched, err := w.api.ListBookings(ctx)
	if err != nil {
		return err
	}
	sort.Slice(fetched, func(i, j int) bool { return fetched[i].ID < fetched[j].ID })

	w.mu.Lock()
	w.items = fetched
	w.mu.Unlock()
	return nil
}

// Items returns a copy of the reconciled list.
func (w *Bookings) Items() []model.Booking {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]model.Booking, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Bookings) Get(id int) (model.Booking, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range w.items {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// Book creates a booking for the house and date range. Date validation
// happens before the request is built; an invalid range never reaches
// the network.
func (w *Bookings) Book(ctx context.Context, houseID int, checkin, checkout time.Time) (*model.Booking, error) {
	if checkin.IsZero() || checkout.IsZero() {
		return nil, lala.NewValidationError("dates", "both checkin and checkout are required")
	}
	if !checkin.Before(checkout) {
		return nil, lala.NewValidationError("dates", "checkin must be before checkout")
	}

	key := actionKey{bookingID: houseID, action: "book"}
	if !w.begin(key) {
		return nil, ErrActionInFlight
	}
	defer w.end(key)

	created, err := w.api.CreateBooking(ctx, houseID, checkin, checkout)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.reconcile(*created)
	w.mu.Unlock()
	return created, nil
}

// SetStatus moves one booking to a new status. The transition guard runs
// client-side first; an illegal transition is rejected without a request.
// The local copy changes only after a successful acknowledgement.
func (w *Bookings) SetStatus(ctx context.Context, id int, status model.BookingStatus) error {
	current, ok := w.Get(id)
	if !ok {
		return ErrUnknownBooking
	}
	if !current.CanSetStatus(status) {
		return lala.NewValidationError("status", "booking cannot move from "+string(current.Status)+" to "+string(status))
	}

	key := actionKey{bookingID: id, action: string(status)}
	if !w.begin(key) {
		return ErrActionInFlight
	}
	defer w.end(key)

	updated, err := w.api.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID != id {
			continue
		}
		if updated != nil && updated.ID == id {
			w.items[i] = *updated
		} else {
			w.items[i].Status = status
		}
		break
	}
	return nil
}

// Delete removes a cancelled booking, server first, then locally. Any
// other status is rejected before a request is sent.
func (w *Bookings) Delete(ctx context.Context, id int) error {
	current, ok := w.Get(id)
	if !ok {
		return ErrUnknownBooking
	}
	if !current.CanDelete() {
		return lala.NewValidationError("status", "only a cancelled booking can be deleted")
	}

	key := actionKey{bookingID: id, action: "delete"}
	if !w.begin(key) {
		return ErrActionInFlight
	}
	defer w.end(key)

	if err := w.api.DeleteBooking(ctx, id); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	return nil
}

// reconcile inserts or replaces one booking, keeping the id order.
// Caller holds the lock.
func (w *Bookings) reconcile(b model.Booking) {
	for i := range w.items {
		if w.items[i].ID == b.ID {
			w.items[i] = b
			return
		}
	}
	w.items = append(w.items, b)
	sort.Slice(w.items, func(i, j int) bool { return w.items[i].ID < w.items[j].ID })
}

func (w *Bookings) begin(key actionKey) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.inflight[key]; busy {
		return false
	}
	w.inflight[key] = struct{}{}
	return true
}

func (w *Bookings) end(key actionKey) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inflight, key)
}
