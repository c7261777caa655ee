package repository

import (
	"context"

	"hotel-reservas/internal/domain/customer"
	"hotel-reservas/internal/infra"
	"hotel-reservas/internal/infra/db"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

const findCustomerByEmailSQL = `
SELECT id_cliente FROM clientes WHERE email = $1`

const insertCustomerSQL = `
INSERT INTO clientes (nombre, apellido, telefono, email, documento_identidad)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO NOTHING
RETURNING id_cliente`

// GetOrCreateByEmail resolves a customer reference by unique email. The
// insert uses ON CONFLICT DO NOTHING followed by a re-read so a concurrent
// creation of the same email never fails the transaction.
func (r *CustomerRepository) GetOrCreateByEmail(ctx context.Context, c customer.Customer) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, findCustomerByEmailSQL, c.Email).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !infra.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to look up customer by email", err)
	}

	err = r.db.QueryRow(ctx, insertCustomerSQL,
		c.Name, c.Surname, c.Phone, c.Email, c.Document,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !infra.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to create customer", err)
	}

	// Lost the insert race; the row exists now.
	if err := r.db.QueryRow(ctx, findCustomerByEmailSQL, c.Email).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to re-read customer after insert conflict", err)
	}
	return id, nil
}
