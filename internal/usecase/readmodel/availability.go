package readmodel

// CategoryAvailabilityRM is one row of the availability result, keyed by
// presentation category in the enclosing map. Price falls back to the
// category baseline when no room is free.
type CategoryAvailabilityRM struct {
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
	Rooms     int     `json:"rooms"`
}
