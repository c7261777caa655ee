package api

import (
	"net/http"

	resdto "hotel-reservas/internal/handler/dto/response"
	"hotel-reservas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the administrative listings and dashboard counts. Pure
// read-throughs; all business logic lives in the booking core.
type AdminHandler struct {
	adminQueries usecase.AdminQueries
}

func NewAdminHandler(adminQueries usecase.AdminQueries) *AdminHandler {
	return &AdminHandler{
		adminQueries: adminQueries,
	}
}

// @Summary List rooms
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} map[string]string
// @Router /rooms [get]
func (h *AdminHandler) ListRooms(c *gin.Context) {
	rooms, err := h.adminQueries.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomRMs(rooms))
}

// @Summary List customers
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Failure 500 {object} map[string]string
// @Router /customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	customers, err := h.adminQueries.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerRMs(customers))
}

// @Summary List reservations
// @Description Bookings joined with customer and room detail, newest check-in first
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.ReservationRowResponse
// @Failure 500 {object} map[string]string
// @Router /reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	reservations, err := h.adminQueries.ListReservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationRowRMs(reservations))
}

// @Summary Dashboard stats
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.DashboardStatsResponse
// @Failure 500 {object} map[string]string
// @Router /dashboard-stats [get]
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.adminQueries.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardStatsRM(stats))
}
