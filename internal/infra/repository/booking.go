package repository

import (
	"context"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/infra"
	"hotel-reservas/internal/infra/db"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingSQL = `
INSERT INTO reservas (id_cliente, id_habitacion, fecha_ingreso, fecha_salida, estado, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id_reserva`

// Create inserts the booking. The reservas exclusion constraint rejects a
// second occupying booking for the same room and an overlapping stay; that
// surfaces here as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createBookingSQL,
		b.CustomerID(),
		b.RoomID(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		string(b.Status()),
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}
