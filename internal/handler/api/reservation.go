package api

import (
	"errors"
	"net/http"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/domain/customer"
	reqdto "hotel-reservas/internal/handler/dto/request"
	resdto "hotel-reservas/internal/handler/dto/response"
	"hotel-reservas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands usecase.ReservationCommands
}

func NewReservationHandler(reservationCommands usecase.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
	}
}

// @Summary Create reservation
// @Description Allocate a free room of the requested category and create a pending booking
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /create-reservation [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Datos de reserva incompletos o inválidos",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationMessage(err),
		})
		return
	}

	result, err := h.reservationCommands.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "La fecha de ingreso debe ser anterior a la de salida",
			})
		case errors.Is(err, usecase.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Tipo de habitación no reconocido",
			})
		case errors.Is(err, usecase.ErrNoRoomsAvailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No hay habitaciones disponibles del tipo seleccionado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, customer.ErrNameRequired):
		return "Nombre y apellido del cliente son requeridos"
	case errors.Is(err, customer.ErrEmailRequired), errors.Is(err, customer.ErrInvalidEmail):
		return "Email del cliente inválido"
	case errors.Is(err, booking.ErrInvalidDateRange):
		return "La fecha de ingreso debe ser anterior a la de salida"
	default:
		return "Formato de fecha inválido, se espera YYYY-MM-DD"
	}
}
