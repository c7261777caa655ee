//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRoom(t *testing.T, db DBLike, number, roomType string, price float64) int64 {
	t.Helper()

	var roomID int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO habitaciones (numero_habitacion, tipo_habitacion, precio, estado) VALUES ($1, $2, $3, 'Disponible') RETURNING id_habitacion",
		number, roomType, price).Scan(&roomID)
	require.NoError(t, err)

	return roomID
}

func CreateTestCustomer(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var customerID int64
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO clientes (nombre, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING",
		name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id_cliente FROM clientes WHERE email = $1", email).Scan(&customerID)
		require.NoError(t, err)
		return customerID
	}

	err = db.QueryRow(ctx, "SELECT id_cliente FROM clientes WHERE email = $1", email).Scan(&customerID)
	require.NoError(t, err)
	return customerID
}

func CreateTestReservation(t *testing.T, db DBLike, customerID, roomID int64, checkIn, checkOut, status string) int64 {
	t.Helper()

	var reservationID int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO reservas (id_cliente, id_habitacion, fecha_ingreso, fecha_salida, estado) VALUES ($1, $2, $3, $4, $5) RETURNING id_reserva",
		customerID, roomID, checkIn, checkOut, status).Scan(&reservationID)
	require.NoError(t, err)

	return reservationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts serial sequences
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
