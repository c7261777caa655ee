package usecase

import (
	"context"
	"errors"
	"time"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/domain/room"
	"hotel-reservas/internal/pkg/config"
	"hotel-reservas/internal/pkg/errs"
	"hotel-reservas/internal/usecase/readmodel"
	"hotel-reservas/internal/usecase/shared"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// AvailabilityReadStore loads every administratively available room together
// with its occupancy for the requested stay. Always reads fresh state; the
// engine never caches across calls.
type AvailabilityReadStore interface {
	RoomOccupancies(ctx context.Context, stay booking.DateRange) ([]shared.RoomOccupancy, error)
}

type AvailabilityQueries interface {
	Check(ctx context.Context, checkIn, checkOut time.Time) (map[string]readmodel.CategoryAvailabilityRM, error)
}

type availabilityQueriesImpl struct {
	store   AvailabilityReadStore
	mapping *room.CategoryMapping
	cfg     config.HotelConfig
}

func NewAvailabilityQueries(store AvailabilityReadStore, mapping *room.CategoryMapping, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:   store,
		mapping: mapping,
		cfg:     cfg.Hotel,
	}
}

// Check aggregates free rooms per presentation category. Every configured
// category appears in the result; categories without a free room report the
// configured baseline price.
func (q *availabilityQueriesImpl) Check(ctx context.Context, checkIn, checkOut time.Time) (map[string]readmodel.CategoryAvailabilityRM, error) {
	stay, err := booking.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	occupancies, err := q.store.RoomOccupancies(ctx, stay)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := make(map[string]readmodel.CategoryAvailabilityRM, len(q.mapping.Categories()))
	for _, cat := range q.mapping.Categories() {
		result[string(cat)] = readmodel.CategoryAvailabilityRM{
			Available: false,
			Price:     q.mapping.BaselinePrice(cat),
			Rooms:     0,
		}
	}

	for _, occ := range occupancies {
		if occ.Occupied {
			continue
		}
		cat := string(q.mapping.PresentationFor(occ.Type))
		entry := result[cat]
		entry.Rooms++
		if !entry.Available {
			entry.Available = true
			entry.Price = occ.Price
		} else if q.pickPrice(entry.Price, occ.Price) {
			entry.Price = occ.Price
		}
		result[cat] = entry
	}

	return result, nil
}

// pickPrice decides whether a newly seen room price replaces the current one.
// The default "min" policy reports the cheapest free room; "last" preserves
// the legacy last-seen-wins behavior.
func (q *availabilityQueriesImpl) pickPrice(current, candidate float64) bool {
	if q.cfg.PricePolicy == "last" {
		return true
	}
	return candidate < current
}
