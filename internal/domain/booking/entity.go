package booking

import "time"

// Booking is a stay reservation for one concrete room. New bookings always
// start out Pending; later status transitions happen outside this core.
type Booking struct {
	id         int64
	customerID int64
	roomID     int64
	stay       DateRange
	status     Status
	createdAt  time.Time
}

func NewBooking(customerID, roomID int64, stay DateRange, now time.Time) *Booking {
	return &Booking{
		customerID: customerID,
		roomID:     roomID,
		stay:       stay,
		status:     StatusPending,
		createdAt:  now,
	}
}

func ReconstructBooking(id, customerID, roomID int64, stay DateRange, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:         id,
		customerID: customerID,
		roomID:     roomID,
		stay:       stay,
		status:     status,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) CustomerID() int64    { return b.customerID }
func (b *Booking) RoomID() int64        { return b.roomID }
func (b *Booking) Stay() DateRange      { return b.stay }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// ConflictsWith reports whether both bookings occupy the same room for at
// least one shared night.
func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.roomID != other.roomID {
		return false
	}
	if !b.status.Occupies() || !other.status.Occupies() {
		return false
	}
	return b.stay.Overlaps(other.stay)
}
