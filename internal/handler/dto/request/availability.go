package request

import (
	"time"

	"hotel-reservas/internal/domain/booking"
)

type CheckAvailabilityRequest struct {
	CheckIn  string `json:"checkin" binding:"required"`
	CheckOut string `json:"checkout" binding:"required"`
}

// Dates parses both bounds with the fixed calendar-date layout. Range
// validation (checkin < checkout) belongs to the usecase layer.
func (r CheckAvailabilityRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(booking.DateFormat, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(booking.DateFormat, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
