package booking

// Status values are stored verbatim; the Spanish vocabulary is shared with the
// reservas table.
type Status string

const (
	StatusPending   Status = "Pendiente"
	StatusConfirmed Status = "Confirmada"
	StatusCancelled Status = "Cancelada"
)

// Occupies reports whether a booking in this status blocks the room for
// overlapping stays.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// OccupyingStatuses lists the statuses that count toward room occupancy, in
// the form repository queries expect.
func OccupyingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
