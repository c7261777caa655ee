package readstore

import (
	"context"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/infra"
	"hotel-reservas/internal/infra/db"
	"hotel-reservas/internal/usecase/shared"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

const roomOccupanciesSQL = `
SELECT h.id_habitacion,
       h.tipo_habitacion,
       h.precio,
       EXISTS (
           SELECT 1
           FROM reservas r
           WHERE r.id_habitacion = h.id_habitacion
             AND r.estado = ANY($1)
             AND r.fecha_ingreso < $3
             AND $2 < r.fecha_salida
       ) AS ocupada
FROM habitaciones h
WHERE h.estado = $4
ORDER BY h.id_habitacion`

// RoomOccupancies reads every administratively available room with its
// occupancy for the stay, computed in one round trip.
func (s *AvailabilityReadStore) RoomOccupancies(ctx context.Context, stay booking.DateRange) ([]shared.RoomOccupancy, error) {
	rows, err := s.db.Query(ctx, roomOccupanciesSQL,
		booking.OccupyingStatuses(),
		stay.CheckIn(),
		stay.CheckOut(),
		"Disponible",
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room occupancies", err)
	}
	defer rows.Close()

	var result []shared.RoomOccupancy
	for rows.Next() {
		var occ shared.RoomOccupancy
		if err := rows.Scan(&occ.ID, &occ.Type, &occ.Price, &occ.Occupied); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room occupancy", err)
		}
		result = append(result, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room occupancies", err)
	}

	return result, nil
}
