package booking

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"parquea/internal/apperrors"
	"parquea/internal/entities"
)

// State of the submission flow over one draft.
type State string

const (
	StateEmpty      State = "empty"
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateCreated    State = "created"
	StateFailed     State = "failed"
)

const submitKey = "create-reservation"

// ReservationCreator is the one backend operation the orchestrator needs.
type ReservationCreator interface {
	CreateReservation(ctx context.Context, req *entities.CreateReservationRequest) (*entities.Reservation, error)
}

// Orchestrator owns the submission of one draft. It guarantees at most one
// create-reservation request per confirmation: a second confirmation while
// a request is in flight joins the in-flight call and receives its outcome
// instead of issuing a duplicate. The backend is not assumed to
// deduplicate, so this is the client's responsibility.
type Orchestrator struct {
	draft *Draft
	api   ReservationCreator

	flight singleflight.Group

	mu       sync.Mutex
	inFlight bool
	created  *entities.Reservation
	lastErr  error
}

func NewOrchestrator(draft *Draft, api ReservationCreator) *Orchestrator {
	return &Orchestrator{draft: draft, api: api}
}

// Draft returns the draft this orchestrator submits.
func (o *Orchestrator) Draft() *Draft { return o.draft }

// State reports where the flow currently stands. Ready/Empty are derived
// from draft completeness so the caller can gate the continue action.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch {
	case o.inFlight:
		return StateSubmitting
	case o.created != nil:
		return StateCreated
	case o.lastErr != nil:
		return StateFailed
	case o.draft.IsComplete():
		return StateReady
	default:
		return StateEmpty
	}
}

// Reservation returns the created reservation once the flow reached
// StateCreated, nil before that.
func (o *Orchestrator) Reservation() *entities.Reservation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.created
}

// Err returns the failure of the last submission, nil if none.
func (o *Orchestrator) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Submit sends the draft to the backend. An incomplete draft is refused
// with a ValidationError naming the first missing field, without touching
// the network. On failure the draft is left intact so the user can retry
// without re-entering anything; on success the draft is reset and the
// reservation returned.
func (o *Orchestrator) Submit(ctx context.Context) (*entities.Reservation, error) {
	// Validation and request construction live inside the flight so every
	// Draft access on the submit path runs in one goroutine at a time;
	// a confirmation joining mid-flight must not read the draft while the
	// winning call is resetting it.
	result, err, _ := o.flight.Do(submitKey, func() (any, error) {
		if missing := o.draft.FirstMissing(); missing != "" {
			return nil, &apperrors.ValidationError{Field: missing}
		}
		req := o.draft.Request()

		o.setInFlight(true)
		defer o.setInFlight(false)

		// The request deliberately outlives caller cancellation: once it
		// is on the wire, aborting could leave the backend with a
		// reservation the client never saw, and a wasted response is
		// cheaper than a duplicate booking.
		reservation, err := o.api.CreateReservation(context.WithoutCancel(ctx), req)
		if err != nil {
			log.Error().Err(err).Int("parking_id", req.ParkingID).Msg("reservation submission failed")
			o.recordFailure(err)
			return nil, err
		}

		log.Info().Str("code", reservation.Code).Msg("reservation created")
		o.recordSuccess(reservation)
		return reservation, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*entities.Reservation), nil
}

func (o *Orchestrator) setInFlight(v bool) {
	o.mu.Lock()
	o.inFlight = v
	o.mu.Unlock()
}

// recordSuccess publishes the reservation and discards the draft in one
// critical section, so State never sees a created reservation next to a
// half-reset draft.
func (o *Orchestrator) recordSuccess(r *entities.Reservation) {
	o.mu.Lock()
	o.created = r
	o.lastErr = nil
	o.draft.Reset()
	o.mu.Unlock()
}

func (o *Orchestrator) recordFailure(err error) {
	o.mu.Lock()
	o.lastErr = err
	o.mu.Unlock()
}
