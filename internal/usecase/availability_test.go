//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/domain/room"
	"hotel-reservas/internal/pkg/config"
	"hotel-reservas/internal/pkg/errs"
	"hotel-reservas/internal/usecase"
	"hotel-reservas/internal/usecase/readmodel"
	"hotel-reservas/internal/usecase/shared"
	"hotel-reservas/tests/mock/usecasemock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testMapping(t *testing.T) *room.CategoryMapping {
	t.Helper()
	hotel := config.NewTestConfig().Hotel
	m, err := room.NewCategoryMapping(room.MappingConfig{
		Categories:       hotel.Categories,
		Forward:          hotel.CategoryMap,
		FallbackCategory: hotel.FallbackCategory,
		Reverse:          hotel.ReverseMap,
		BaselinePrices:   hotel.BaselinePrices,
	})
	require.NoError(t, err)
	return m
}

func date(s string) time.Time {
	t, err := time.Parse(booking.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newAvailabilityQueries(t *testing.T, cfg config.Config) (usecase.AvailabilityQueries, *usecasemock.MockAvailabilityReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := usecasemock.NewMockAvailabilityReadStore(ctrl)
	return usecase.NewAvailabilityQueries(store, testMapping(t), cfg), store
}

func TestAvailabilityCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid range never touches the store", func(t *testing.T) {
		q, _ := newAvailabilityQueries(t, config.NewTestConfig())

		_, err := q.Check(ctx, date("2026-03-12"), date("2026-03-10"))
		assert.ErrorIs(t, err, usecase.ErrInvalidDateRange)

		_, err = q.Check(ctx, date("2026-03-10"), date("2026-03-10"))
		assert.ErrorIs(t, err, usecase.ErrInvalidDateRange)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		q, store := newAvailabilityQueries(t, config.NewTestConfig())
		store.EXPECT().
			RoomOccupancies(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection reset"))

		_, err := q.Check(ctx, date("2026-03-10"), date("2026-03-12"))
		assert.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})

	t.Run("empty inventory still reports every category", func(t *testing.T) {
		q, store := newAvailabilityQueries(t, config.NewTestConfig())
		store.EXPECT().
			RoomOccupancies(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		result, err := q.Check(ctx, date("2026-03-10"), date("2026-03-12"))
		require.NoError(t, err)
		require.Len(t, result, 4)

		assert.Equal(t, readmodel.CategoryAvailabilityRM{Available: false, Price: 150000, Rooms: 0}, result["estandar"])
		assert.Equal(t, readmodel.CategoryAvailabilityRM{Available: false, Price: 250000, Rooms: 0}, result["deluxe"])
		assert.Equal(t, readmodel.CategoryAvailabilityRM{Available: false, Price: 400000, Rooms: 0}, result["suite"])
		assert.Equal(t, readmodel.CategoryAvailabilityRM{Available: false, Price: 500000, Rooms: 0}, result["presidencial"])
	})

	t.Run("occupied rooms are excluded and free rooms aggregated", func(t *testing.T) {
		q, store := newAvailabilityQueries(t, config.NewTestConfig())
		store.EXPECT().
			RoomOccupancies(gomock.Any(), gomock.Any()).
			Return([]shared.RoomOccupancy{
				{ID: 1, Type: "Sencilla", Price: 120000, Occupied: true},
				{ID: 2, Type: "Sencilla", Price: 130000, Occupied: false},
				{ID: 3, Type: "Doble", Price: 260000, Occupied: false},
				{ID: 4, Type: "Doble", Price: 240000, Occupied: false},
			}, nil)

		result, err := q.Check(ctx, date("2026-03-10"), date("2026-03-12"))
		require.NoError(t, err)

		expected := map[string]readmodel.CategoryAvailabilityRM{
			"estandar":     {Available: true, Price: 130000, Rooms: 1},
			"deluxe":       {Available: true, Price: 240000, Rooms: 2},
			"suite":        {Available: false, Price: 400000, Rooms: 0},
			"presidencial": {Available: false, Price: 500000, Rooms: 0},
		}
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unmapped stored types aggregate under the fallback category", func(t *testing.T) {
		q, store := newAvailabilityQueries(t, config.NewTestConfig())
		store.EXPECT().
			RoomOccupancies(gomock.Any(), gomock.Any()).
			Return([]shared.RoomOccupancy{
				{ID: 9, Type: "Penthouse", Price: 900000, Occupied: false},
			}, nil)

		result, err := q.Check(ctx, date("2026-03-10"), date("2026-03-12"))
		require.NoError(t, err)

		assert.Equal(t, readmodel.CategoryAvailabilityRM{Available: true, Price: 900000, Rooms: 1}, result["presidencial"])
	})

	t.Run("last price policy keeps the last seen price", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Hotel.PricePolicy = "last"
		q, store := newAvailabilityQueries(t, cfg)
		store.EXPECT().
			RoomOccupancies(gomock.Any(), gomock.Any()).
			Return([]shared.RoomOccupancy{
				{ID: 1, Type: "Doble", Price: 240000, Occupied: false},
				{ID: 2, Type: "Doble", Price: 260000, Occupied: false},
			}, nil)

		result, err := q.Check(ctx, date("2026-03-10"), date("2026-03-12"))
		require.NoError(t, err)
		assert.Equal(t, 260000.0, result["deluxe"].Price)
	})
}
