package shared

import (
	"context"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/domain/customer"
	"hotel-reservas/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Customers() CustomerRepository
	DB() db.DBTX
}

type RoomRepository interface {
	// FirstFreeByTypes returns the lowest-id administratively available room
	// of one of the given stored types with no occupying booking overlapping
	// the stay. KindNotFound when no candidate exists.
	FirstFreeByTypes(ctx context.Context, storedTypes []string, stay booking.DateRange) (int64, error)
}

type BookingRepository interface {
	// Create inserts the booking and returns its assigned id. KindConflict
	// when a concurrent allocation took the room for an overlapping stay.
	Create(ctx context.Context, b *booking.Booking) (int64, error)
}

type CustomerRepository interface {
	// GetOrCreateByEmail resolves the customer reference, creating the record
	// on first contact.
	GetOrCreateByEmail(ctx context.Context, c customer.Customer) (int64, error)
}
