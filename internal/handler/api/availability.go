package api

import (
	"errors"
	"net/http"

	reqdto "hotel-reservas/internal/handler/dto/request"
	resdto "hotel-reservas/internal/handler/dto/response"
	"hotel-reservas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries usecase.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries usecase.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Check availability
// @Description Check per-category room availability for a stay
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Stay dates (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /check-availability [post]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Fechas requeridas",
		})
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de fecha inválido, se espera YYYY-MM-DD",
		})
		return
	}

	availability, err := h.availabilityQueries.Check(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "La fecha de ingreso debe ser anterior a la de salida",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityRM(availability))
}
