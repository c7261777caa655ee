package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/domain/customer"
	"hotel-reservas/internal/domain/room"
	"hotel-reservas/internal/infra"
	"hotel-reservas/internal/pkg/clock"
	"hotel-reservas/internal/pkg/config"
	"hotel-reservas/internal/pkg/errs"
	"hotel-reservas/internal/usecase/shared"
)

var (
	ErrUnknownCategory  = errors.New("unknown room category")
	ErrNoRoomsAvailable = errors.New("no rooms available for the requested category and dates")

	// errAllocationConflict marks a lost race against a concurrent allocation;
	// retried once, then surfaced as ErrNoRoomsAvailable.
	errAllocationConflict = errors.New("allocation conflict")
)

type CreateReservationParams struct {
	CheckIn  time.Time
	CheckOut time.Time
	Category string
	Customer customer.Customer
}

type CreateReservationResult struct {
	BookingID     int64
	ReservationID string // formatted as prefix + zero-padded id, e.g. HTR-000042
	RoomID        int64
	CustomerID    int64
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	mapping *room.CategoryMapping
	clock   clock.Clock
	cfg     config.HotelConfig
}

func NewReservationCommands(uow shared.UnitOfWork, mapping *room.CategoryMapping, clk clock.Clock, cfg config.Config) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		mapping: mapping,
		clock:   clk,
		cfg:     cfg.Hotel,
	}
}

// Create allocates one concrete room for the stay and inserts a Pending
// booking, resolving the customer by email inside the same transaction so a
// failed insert rolls everything back. Validation failures never touch
// storage.
func (r *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error) {
	stay, err := booking.NewDateRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	storedTypes, err := r.mapping.StoredTypesFor(room.Category(params.Category))
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownCategory)
	}

	// A lost race against a concurrent allocation is retried with a fresh
	// candidate query; the conflicting booking is visible by then.
	attempts := r.cfg.AllocationRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		result, err := r.allocate(ctx, storedTypes, stay, params.Customer)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, errAllocationConflict) {
			return nil, err
		}
		slog.Warn("reservation allocation raced, retrying",
			"attempt", attempt+1,
			"category", params.Category,
			"stay", stay.String())
	}

	return nil, ErrNoRoomsAvailable
}

func (r *reservationCommandsImpl) allocate(
	ctx context.Context,
	storedTypes []string,
	stay booking.DateRange,
	guest customer.Customer,
) (*CreateReservationResult, error) {
	var result CreateReservationResult

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customerID, err := tx.Customers().GetOrCreateByEmail(ctx, guest)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		roomID, err := tx.Rooms().FirstFreeByTypes(ctx, storedTypes, stay)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoRoomsAvailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		b := booking.NewBooking(customerID, roomID, stay, r.clock.Now())
		bookingID, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errAllocationConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = CreateReservationResult{
			BookingID:     bookingID,
			ReservationID: FormatReservationID(r.cfg.ReservationPrefix, bookingID),
			RoomID:        roomID,
			CustomerID:    customerID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// FormatReservationID renders the internal serial id in the customer-facing
// fixed-width form.
func FormatReservationID(prefix string, id int64) string {
	return fmt.Sprintf("%s%06d", prefix, id)
}
