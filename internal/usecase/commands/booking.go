package commands

import (
	"context"
	"log/slog"
	"time"

	"probook/internal/domain/booking"
	"probook/internal/infra"
	"probook/internal/infra/db"
	"probook/internal/pkg/clock"
	"probook/internal/pkg/errs"
	"probook/internal/usecase/queries"
	"probook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProfessionalNotFound    = errs.New("professional not found or inactive")
	ErrClientNotFound          = errs.New("client not found or inactive")
	ErrInvalidWindow           = errs.New("invalid booking window")
	ErrBookingConflict         = errs.New("booking time conflict")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const minDurationHours = 0.5

type CreateBookingParams struct {
	ProfessionalID uuid.UUID
	ClientID       uuid.UUID
	StartTime      time.Time
	DurationHours  float64
	Notes          *string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	ledger            *IdempotencyLedger
	oracle            *AvailabilityOracle
	guard             *OverlapGuard
	professionalReads ProfessionalReads
	clientReads       ClientReads
	bookingRepo       BookingRepository
	bookingQueries    queries.BookingQueries
	txRunner          shared.TxRunner
	db                db.DBTX
	priceCalc         booking.PriceCalculator
	clock             clock.Clock
}

func NewBookingCommands(
	ledger *IdempotencyLedger,
	oracle *AvailabilityOracle,
	guard *OverlapGuard,
	professionalReads ProfessionalReads,
	clientReads ClientReads,
	bookingRepo BookingRepository,
	bookingQueries queries.BookingQueries,
	txRunner shared.TxRunner,
	dbtx db.DBTX,
	priceCalc booking.PriceCalculator,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		ledger:            ledger,
		oracle:            oracle,
		guard:             guard,
		professionalReads: professionalReads,
		clientReads:       clientReads,
		bookingRepo:       bookingRepo,
		bookingQueries:    bookingQueries,
		txRunner:          txRunner,
		db:                dbtx,
		priceCalc:         priceCalc,
		clock:             clk,
	}
}

// CreateBooking runs the admission pipeline: idempotency resolution,
// directory validation, window and price computation, availability check,
// advisory overlap pre-check, then the authoritative re-check and insert
// inside one transaction. Only the happy path records an outcome in the
// ledger.
func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	fingerprint := RequestFingerprint(params)

	cached, err := u.ledger.Resolve(ctx, idempotencyKey, fingerprint)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return &CreateBookingResult{Booking: cached, IsReplayed: true}, nil
	}

	professional, err := u.findActiveProfessional(ctx, params.ProfessionalID)
	if err != nil {
		return nil, err
	}
	client, err := u.findActiveClient(ctx, params.ClientID)
	if err != nil {
		return nil, err
	}

	slot, err := u.buildSlot(params)
	if err != nil {
		return nil, err
	}

	if err := u.oracle.EnsureBookable(ctx, professional.ID, slot); err != nil {
		return nil, err
	}

	// Advisory pre-check: fast-fails the obvious conflicts before paying for
	// a transaction. May be stale; step inside the transaction decides.
	conflict, err := u.guard.HasConflict(ctx, u.db, professional.ID, slot)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflict {
		return nil, ErrBookingConflict
	}

	price, err := booking.NewMoney(u.priceCalc.TotalPriceCents(professional.HourlyRateCents, params.DurationHours))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	var note booking.Note
	if params.Notes != nil {
		note = booking.NewNote(*params.Notes)
	}
	entity := booking.NewBooking(professional.ID, client.ID, slot, price, idempotencyKey, note)

	if err := u.commitBooking(ctx, entity); err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// The booking is committed; a failed ledger write must not fail the
	// request. The next retry re-runs the pipeline and hits the conflict
	// backstop instead of duplicating the booking.
	if err := u.ledger.Record(ctx, idempotencyKey, fingerprint, view, 0); err != nil {
		slog.Warn("failed to record idempotency outcome",
			"idempotency_key", idempotencyKey,
			"booking_id", entity.ID(),
			"error", err)
	}

	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

// commitBooking holds the only writes of the pipeline: lock the professional,
// re-check overlaps with transaction-scoped reads, insert. A unique-index
// violation from a lost race is translated to ErrBookingConflict; everything
// else rolls back as an infrastructure failure.
func (u *bookingCommandsImpl) commitBooking(ctx context.Context, entity *booking.Booking) error {
	return u.txRunner.RunInTx(ctx, func(tx db.DBTX) error {
		if err := u.bookingRepo.LockProfessional(ctx, tx, entity.ProfessionalID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		conflict, err := u.guard.HasConflict(ctx, tx, entity.ProfessionalID(), entity.TimeSlot())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			// Two identical requests that both resolved fresh race to this
			// point; the loser gets this conflict rather than the winner's
			// replayed outcome. Its next retry with the same key replays
			// from the ledger.
			return ErrBookingConflict
		}

		if _, err := u.bookingRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrBookingConflict)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *bookingCommandsImpl) findActiveProfessional(ctx context.Context, id uuid.UUID) (*ProfessionalSnapshot, error) {
	snapshot, err := u.professionalReads.FindActiveByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProfessionalNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snapshot, nil
}

func (u *bookingCommandsImpl) findActiveClient(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error) {
	snapshot, err := u.clientReads.FindActiveByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snapshot, nil
}

func (u *bookingCommandsImpl) buildSlot(params CreateBookingParams) (booking.TimeSlot, error) {
	if params.DurationHours < minDurationHours {
		return booking.TimeSlot{}, errs.Mark(errs.New("duration below minimum"), ErrInvalidWindow)
	}

	// Availability windows are declared at minute granularity, so both slot
	// bounds must land on whole minutes; a sub-minute remainder would slip
	// past a window edge when the bounds are reduced to minutes of the day.
	if !params.StartTime.Equal(params.StartTime.Truncate(time.Minute)) {
		return booking.TimeSlot{}, errs.Mark(errs.New("start time must be minute-aligned"), ErrInvalidWindow)
	}

	end := params.StartTime.Add(time.Duration(params.DurationHours * float64(time.Hour)))
	if !end.Equal(end.Truncate(time.Minute)) {
		return booking.TimeSlot{}, errs.Mark(errs.New("duration must be a whole number of minutes"), ErrInvalidWindow)
	}
	slot, err := booking.NewTimeSlot(params.StartTime, end)
	if err != nil {
		return booking.TimeSlot{}, errs.Mark(err, ErrInvalidWindow)
	}
	if err := slot.ValidateAdmission(u.clock.Now()); err != nil {
		return booking.TimeSlot{}, errs.Mark(err, ErrInvalidWindow)
	}
	return slot, nil
}
