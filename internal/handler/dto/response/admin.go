package response

import (
	"time"

	"hotel-reservas/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID     int64   `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReservationRowResponse struct {
	ID              int64     `json:"id"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customerName"`
	CustomerSurname string    `json:"customerSurname"`
	CustomerEmail   string    `json:"customerEmail"`
	RoomNumber      string    `json:"roomNumber"`
	RoomType        string    `json:"roomType"`
	RoomPrice       float64   `json:"roomPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Dashboard keys are shared with the legacy admin frontend.
type DashboardStatsResponse struct {
	TotalReservations  int64 `json:"total_reservas"`
	ActiveReservations int64 `json:"reservas_activas"`
	TotalCustomers     int64 `json:"total_clientes"`
	AvailableRooms     int64 `json:"habitaciones_disponibles"`
}

func FromRoomRMs(rms []*readmodel.RoomRM) []RoomResponse {
	out := make([]RoomResponse, 0, len(rms))
	_ = copier.Copy(&out, &rms)
	return out
}

func FromCustomerRMs(rms []*readmodel.CustomerRM) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(rms))
	_ = copier.Copy(&out, &rms)
	return out
}

func FromReservationRowRMs(rms []*readmodel.ReservationRowRM) []ReservationRowResponse {
	out := make([]ReservationRowResponse, 0, len(rms))
	_ = copier.Copy(&out, &rms)
	return out
}

func FromDashboardStatsRM(rm *readmodel.DashboardStatsRM) DashboardStatsResponse {
	var out DashboardStatsResponse
	_ = copier.Copy(&out, rm)
	return out
}
