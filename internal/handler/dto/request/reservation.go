package request

import (
	"time"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/domain/customer"
	"hotel-reservas/internal/usecase"
)

type CustomerPayload struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

type CreateReservationRequest struct {
	CheckIn  string          `json:"checkin" binding:"required"`
	CheckOut string          `json:"checkout" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Customer CustomerPayload `json:"customer" binding:"required"`
}

// ToParams parses dates and builds the validated guest record. Date range and
// category checks happen in the usecase layer.
func (r CreateReservationRequest) ToParams() (usecase.CreateReservationParams, error) {
	checkIn, err := time.Parse(booking.DateFormat, r.CheckIn)
	if err != nil {
		return usecase.CreateReservationParams{}, err
	}
	checkOut, err := time.Parse(booking.DateFormat, r.CheckOut)
	if err != nil {
		return usecase.CreateReservationParams{}, err
	}

	guest, err := customer.NewCustomer(r.Customer.Name, r.Customer.Surname, r.Customer.Email, r.Customer.Phone, r.Customer.Document)
	if err != nil {
		return usecase.CreateReservationParams{}, err
	}

	return usecase.CreateReservationParams{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Category: r.Category,
		Customer: guest,
	}, nil
}
