package readstore

import (
	"context"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/infra"
	"hotel-reservas/internal/infra/db"
	"hotel-reservas/internal/usecase/readmodel"
)

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(dbtx db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: dbtx}
}

const listRoomsSQL = `
SELECT id_habitacion, numero_habitacion, tipo_habitacion, precio, estado
FROM habitaciones
ORDER BY id_habitacion`

func (s *AdminReadStore) Rooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rows, err := s.db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomRM
	for rows.Next() {
		rm := &readmodel.RoomRM{}
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Type, &rm.Price, &rm.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}

	return result, nil
}

const listCustomersSQL = `
SELECT id_cliente, nombre, apellido, email, telefono, documento_identidad, created_at
FROM clientes
ORDER BY id_cliente`

func (s *AdminReadStore) Customers(ctx context.Context) ([]*readmodel.CustomerRM, error) {
	rows, err := s.db.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*readmodel.CustomerRM
	for rows.Next() {
		rm := &readmodel.CustomerRM{}
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Surname, &rm.Email, &rm.Phone, &rm.Document, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}

	return result, nil
}

const listReservationsSQL = `
SELECT r.id_reserva, r.fecha_ingreso, r.fecha_salida, r.estado, r.created_at,
       c.nombre, c.apellido, c.email,
       h.numero_habitacion, h.tipo_habitacion, h.precio
FROM reservas r
JOIN clientes c ON r.id_cliente = c.id_cliente
JOIN habitaciones h ON r.id_habitacion = h.id_habitacion
ORDER BY r.fecha_ingreso DESC`

func (s *AdminReadStore) Reservations(ctx context.Context) ([]*readmodel.ReservationRowRM, error) {
	rows, err := s.db.Query(ctx, listReservationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*readmodel.ReservationRowRM
	for rows.Next() {
		rm := &readmodel.ReservationRowRM{}
		if err := rows.Scan(
			&rm.ID, &rm.CheckIn, &rm.CheckOut, &rm.Status, &rm.CreatedAt,
			&rm.CustomerName, &rm.CustomerSurname, &rm.CustomerEmail,
			&rm.RoomNumber, &rm.RoomType, &rm.RoomPrice,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}

	return result, nil
}

const dashboardStatsSQL = `
SELECT
    (SELECT COUNT(*) FROM reservas),
    (SELECT COUNT(*) FROM reservas WHERE estado = ANY($1)),
    (SELECT COUNT(*) FROM clientes),
    (SELECT COUNT(*) FROM habitaciones WHERE estado = $2)`

func (s *AdminReadStore) DashboardStats(ctx context.Context) (*readmodel.DashboardStatsRM, error) {
	stats := &readmodel.DashboardStatsRM{}
	err := s.db.QueryRow(ctx, dashboardStatsSQL, booking.OccupyingStatuses(), "Disponible").Scan(
		&stats.TotalReservations,
		&stats.ActiveReservations,
		&stats.TotalCustomers,
		&stats.AvailableRooms,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query dashboard stats", err)
	}

	return stats, nil
}
