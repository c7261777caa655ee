package room

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the customer-facing room tier label, distinct from the stored
// room type on the inventory.
type Category string

var (
	ErrUnknownCategory   = errors.New("unknown presentation category")
	ErrIncompleteMapping = errors.New("incomplete category mapping")
)

// MappingConfig is the externally supplied category translation table.
// Reverse values may list several stored types separated by ';'.
type MappingConfig struct {
	Categories       []string
	Forward          map[string]string
	FallbackCategory string
	Reverse          map[string]string
	BaselinePrices   map[string]float64
}

// CategoryMapping translates between stored room types and presentation
// categories. The forward direction is total: unmapped stored types resolve
// to the fallback category.
type CategoryMapping struct {
	order    []Category
	forward  map[string]Category
	fallback Category
	reverse  map[Category][]string
	baseline map[Category]float64
}

func NewCategoryMapping(cfg MappingConfig) (*CategoryMapping, error) {
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("%w: no presentation categories configured", ErrIncompleteMapping)
	}

	known := make(map[Category]bool, len(cfg.Categories))
	order := make([]Category, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		cat := Category(strings.TrimSpace(c))
		if cat == "" || known[cat] {
			return nil, fmt.Errorf("%w: empty or duplicate category %q", ErrIncompleteMapping, c)
		}
		known[cat] = true
		order = append(order, cat)
	}

	fallback := Category(cfg.FallbackCategory)
	if !known[fallback] {
		return nil, fmt.Errorf("%w: fallback category %q is not a configured category", ErrIncompleteMapping, cfg.FallbackCategory)
	}

	forward := make(map[string]Category, len(cfg.Forward))
	for storedType, c := range cfg.Forward {
		cat := Category(c)
		if !known[cat] {
			return nil, fmt.Errorf("%w: stored type %q maps to unknown category %q", ErrIncompleteMapping, storedType, c)
		}
		forward[storedType] = cat
	}

	reverse := make(map[Category][]string, len(cfg.Reverse))
	for c, types := range cfg.Reverse {
		cat := Category(c)
		if !known[cat] {
			return nil, fmt.Errorf("%w: reverse mapping references unknown category %q", ErrIncompleteMapping, c)
		}
		var stored []string
		for _, t := range strings.Split(types, ";") {
			t = strings.TrimSpace(t)
			if t != "" {
				stored = append(stored, t)
			}
		}
		if len(stored) == 0 {
			return nil, fmt.Errorf("%w: category %q has no stored room types", ErrIncompleteMapping, c)
		}
		reverse[cat] = stored
	}

	// Every bookable category needs an explicit reverse entry; ambiguity must
	// be resolved by configuration, not inferred.
	for _, cat := range order {
		if _, ok := reverse[cat]; !ok {
			return nil, fmt.Errorf("%w: category %q missing from reverse mapping", ErrIncompleteMapping, cat)
		}
		if _, ok := cfg.BaselinePrices[string(cat)]; !ok {
			return nil, fmt.Errorf("%w: category %q missing baseline price", ErrIncompleteMapping, cat)
		}
	}

	baseline := make(map[Category]float64, len(cfg.BaselinePrices))
	for c, p := range cfg.BaselinePrices {
		baseline[Category(c)] = p
	}

	return &CategoryMapping{
		order:    order,
		forward:  forward,
		fallback: fallback,
		reverse:  reverse,
		baseline: baseline,
	}, nil
}

// Categories returns every presentation category in configured order.
func (m *CategoryMapping) Categories() []Category {
	out := make([]Category, len(m.order))
	copy(out, m.order)
	return out
}

// PresentationFor resolves a stored room type to its presentation category.
// Unmapped types land on the fallback category, so no room is ever dropped
// from aggregation.
func (m *CategoryMapping) PresentationFor(storedType string) Category {
	if cat, ok := m.forward[storedType]; ok {
		return cat
	}
	return m.fallback
}

// StoredTypesFor resolves a presentation category to the stored room types an
// allocator may use for it.
func (m *CategoryMapping) StoredTypesFor(cat Category) ([]string, error) {
	types, ok := m.reverse[cat]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	out := make([]string, len(types))
	copy(out, types)
	return out, nil
}

func (m *CategoryMapping) BaselinePrice(cat Category) float64 {
	return m.baseline[cat]
}

func (m *CategoryMapping) IsKnown(cat Category) bool {
	_, ok := m.reverse[cat]
	return ok
}
