//go:build unit

package room_test

import (
	"testing"

	"hotel-reservas/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMappingConfig() room.MappingConfig {
	return room.MappingConfig{
		Categories: []string{"estandar", "deluxe", "suite", "presidencial"},
		Forward: map[string]string{
			"Sencilla": "estandar",
			"Doble":    "deluxe",
			"Suite":    "suite",
		},
		FallbackCategory: "presidencial",
		Reverse: map[string]string{
			"estandar":     "Sencilla",
			"deluxe":       "Doble",
			"suite":        "Suite",
			"presidencial": "Suite",
		},
		BaselinePrices: map[string]float64{
			"estandar":     150000,
			"deluxe":       250000,
			"suite":        400000,
			"presidencial": 500000,
		},
	}
}

func TestNewCategoryMapping(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		m, err := room.NewCategoryMapping(validMappingConfig())
		require.NoError(t, err)
		assert.Equal(t,
			[]room.Category{"estandar", "deluxe", "suite", "presidencial"},
			m.Categories())
	})

	tests := []struct {
		name   string
		mutate func(*room.MappingConfig)
	}{
		{
			name:   "no categories",
			mutate: func(c *room.MappingConfig) { c.Categories = nil },
		},
		{
			name:   "duplicate category",
			mutate: func(c *room.MappingConfig) { c.Categories = append(c.Categories, "deluxe") },
		},
		{
			name:   "fallback not a configured category",
			mutate: func(c *room.MappingConfig) { c.FallbackCategory = "imperial" },
		},
		{
			name:   "forward entry points to unknown category",
			mutate: func(c *room.MappingConfig) { c.Forward["Sencilla"] = "imperial" },
		},
		{
			name:   "reverse entry for unknown category",
			mutate: func(c *room.MappingConfig) { c.Reverse["imperial"] = "Suite" },
		},
		{
			name:   "category missing from reverse mapping",
			mutate: func(c *room.MappingConfig) { delete(c.Reverse, "deluxe") },
		},
		{
			name:   "reverse entry with only separators",
			mutate: func(c *room.MappingConfig) { c.Reverse["deluxe"] = " ; ; " },
		},
		{
			name:   "category missing baseline price",
			mutate: func(c *room.MappingConfig) { delete(c.BaselinePrices, "suite") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validMappingConfig()
			tt.mutate(&cfg)
			_, err := room.NewCategoryMapping(cfg)
			assert.ErrorIs(t, err, room.ErrIncompleteMapping)
		})
	}
}

func TestPresentationFor(t *testing.T) {
	m, err := room.NewCategoryMapping(validMappingConfig())
	require.NoError(t, err)

	assert.Equal(t, room.Category("estandar"), m.PresentationFor("Sencilla"))
	assert.Equal(t, room.Category("deluxe"), m.PresentationFor("Doble"))
	assert.Equal(t, room.Category("suite"), m.PresentationFor("Suite"))

	// unmapped stored types land on the fallback
	assert.Equal(t, room.Category("presidencial"), m.PresentationFor("Penthouse"))
	assert.Equal(t, room.Category("presidencial"), m.PresentationFor(""))
}

func TestStoredTypesFor(t *testing.T) {
	cfg := validMappingConfig()
	cfg.Reverse["deluxe"] = "Doble;Matrimonial"
	m, err := room.NewCategoryMapping(cfg)
	require.NoError(t, err)

	t.Run("single stored type", func(t *testing.T) {
		types, err := m.StoredTypesFor("estandar")
		require.NoError(t, err)
		assert.Equal(t, []string{"Sencilla"}, types)
	})

	t.Run("multiple stored types split on semicolon", func(t *testing.T) {
		types, err := m.StoredTypesFor("deluxe")
		require.NoError(t, err)
		assert.Equal(t, []string{"Doble", "Matrimonial"}, types)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := m.StoredTypesFor("imperial")
		assert.ErrorIs(t, err, room.ErrUnknownCategory)
		assert.False(t, m.IsKnown("imperial"))
	})
}

func TestBaselinePrice(t *testing.T) {
	m, err := room.NewCategoryMapping(validMappingConfig())
	require.NoError(t, err)

	assert.Equal(t, 150000.0, m.BaselinePrice("estandar"))
	assert.Equal(t, 500000.0, m.BaselinePrice("presidencial"))
}

func TestRoomIsBookable(t *testing.T) {
	assert.True(t, room.Room{Status: room.StatusAvailable}.IsBookable())
	assert.False(t, room.Room{Status: room.StatusUnavailable}.IsBookable())
	assert.False(t, room.Room{Status: "Mantenimiento"}.IsBookable())
}
