package room

// AdminStatus is the administratively set room state, independent of any
// booking. Values are shared with the habitaciones table.
type AdminStatus string

const (
	StatusAvailable   AdminStatus = "Disponible"
	StatusUnavailable AdminStatus = "No Disponible"
)

// Room is read-only to this core; inventory is administered externally.
type Room struct {
	ID     int64
	Number string
	Type   string
	Price  float64
	Status AdminStatus
}

func (r Room) IsBookable() bool {
	return r.Status == StatusAvailable
}
