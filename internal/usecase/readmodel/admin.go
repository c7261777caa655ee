package readmodel

import "time"

type RoomRM struct {
	ID     int64   `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

type CustomerRM struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationRowRM is a booking joined with its customer and room detail for
// the admin listing.
type ReservationRowRM struct {
	ID              int64     `json:"id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	CustomerSurname string    `json:"customer_surname"`
	CustomerEmail   string    `json:"customer_email"`
	RoomNumber      string    `json:"room_number"`
	RoomType        string    `json:"room_type"`
	RoomPrice       float64   `json:"room_price"`
	CreatedAt       time.Time `json:"created_at"`
}

type DashboardStatsRM struct {
	TotalReservations  int64 `json:"total_reservas"`
	ActiveReservations int64 `json:"reservas_activas"`
	TotalCustomers     int64 `json:"total_clientes"`
	AvailableRooms     int64 `json:"habitaciones_disponibles"`
}
