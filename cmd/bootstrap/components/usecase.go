package components

import (
	"hotel-reservas/internal/domain/room"
	"hotel-reservas/internal/pkg/clock"
	"hotel-reservas/internal/pkg/config"
	"hotel-reservas/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewCategoryMapping,
		usecase.NewAvailabilityQueries,
		usecase.NewReservationCommands,
		usecase.NewAdminQueries,
	),
)

func NewCategoryMapping(cfg config.Config) (*room.CategoryMapping, error) {
	return room.NewCategoryMapping(room.MappingConfig{
		Categories:       cfg.Hotel.Categories,
		Forward:          cfg.Hotel.CategoryMap,
		FallbackCategory: cfg.Hotel.FallbackCategory,
		Reverse:          cfg.Hotel.ReverseMap,
		BaselinePrices:   cfg.Hotel.BaselinePrices,
	})
}
