package repository

import (
	"context"

	"hotel-reservas/internal/domain/booking"
	"hotel-reservas/internal/infra"
	"hotel-reservas/internal/infra/db"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

// Candidate selection is ordered by room id so allocation is deterministic
// and reproducible. The overlap test uses half-open interval semantics:
// fecha_ingreso < checkOut AND checkIn < fecha_salida.
const firstFreeByTypesSQL = `
SELECT h.id_habitacion
FROM habitaciones h
WHERE h.estado = $1
  AND h.tipo_habitacion = ANY($2)
  AND NOT EXISTS (
      SELECT 1
      FROM reservas r
      WHERE r.id_habitacion = h.id_habitacion
        AND r.estado = ANY($3)
        AND r.fecha_ingreso < $5
        AND $4 < r.fecha_salida
  )
ORDER BY h.id_habitacion
LIMIT 1`

func (r *RoomRepository) FirstFreeByTypes(ctx context.Context, storedTypes []string, stay booking.DateRange) (int64, error) {
	var roomID int64
	err := r.db.QueryRow(ctx, firstFreeByTypesSQL,
		"Disponible",
		storedTypes,
		booking.OccupyingStatuses(),
		stay.CheckIn(),
		stay.CheckOut(),
	).Scan(&roomID)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("no free room for requested types and stay", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to query free room", err)
	}

	return roomID, nil
}
