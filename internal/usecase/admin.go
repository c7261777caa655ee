package usecase

import (
	"context"

	"hotel-reservas/internal/pkg/errs"
	"hotel-reservas/internal/usecase/readmodel"
)

// AdminReadStore backs the administrative listings and dashboard counts.
// Pure read-throughs over current storage state.
type AdminReadStore interface {
	Rooms(ctx context.Context) ([]*readmodel.RoomRM, error)
	Customers(ctx context.Context) ([]*readmodel.CustomerRM, error)
	Reservations(ctx context.Context) ([]*readmodel.ReservationRowRM, error)
	DashboardStats(ctx context.Context) (*readmodel.DashboardStatsRM, error)
}

type AdminQueries interface {
	ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error)
	ListCustomers(ctx context.Context) ([]*readmodel.CustomerRM, error)
	ListReservations(ctx context.Context) ([]*readmodel.ReservationRowRM, error)
	DashboardStats(ctx context.Context) (*readmodel.DashboardStatsRM, error)
}

type adminQueriesImpl struct {
	store AdminReadStore
}

func NewAdminQueries(store AdminReadStore) AdminQueries {
	return &adminQueriesImpl{store: store}
}

func (q *adminQueriesImpl) ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rooms, err := q.store.Rooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (q *adminQueriesImpl) ListCustomers(ctx context.Context) ([]*readmodel.CustomerRM, error) {
	customers, err := q.store.Customers(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return customers, nil
}

func (q *adminQueriesImpl) ListReservations(ctx context.Context) ([]*readmodel.ReservationRowRM, error) {
	reservations, err := q.store.Reservations(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reservations, nil
}

func (q *adminQueriesImpl) DashboardStats(ctx context.Context) (*readmodel.DashboardStatsRM, error) {
	stats, err := q.store.DashboardStats(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return stats, nil
}
