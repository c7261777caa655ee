package response

import "hotel-reservas/internal/usecase"

type CreateReservationResponse struct {
	Success       bool   `json:"success"`
	ReservationID string `json:"reservationId"`
	Message       string `json:"message"`
}

func FromReservationResult(result *usecase.CreateReservationResult) CreateReservationResponse {
	return CreateReservationResponse{
		Success:       true,
		ReservationID: result.ReservationID,
		Message:       "Reserva creada exitosamente",
	}
}
