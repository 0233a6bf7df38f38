package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tallerpro/repuestos-api/internal/application/inventory"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción de PostgreSQL,
// entregando repositorios ligados a esa transacción. Un error del callback
// revierte todo; los fallos de serialización y deadlocks se traducen a
// domain.ErrConflictoConcurrencia para que el cliente reintente.
type TxRunner struct {
	pool *pgxpool.Pool
}

var _ inventory.TxRunner = (*TxRunner)(nil)

// NewTxRunner construye el runner sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre la transacción, invoca fn con repositorios transaccionales y hace
// commit si fn retorna nil. Cualquier otro resultado revierte.
func (r *TxRunner) Run(ctx context.Context, fn func(parteRepo repository.ParteRepuestoRepository, movRepo repository.MovimientoInventarioRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciando transacción: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback tras commit es no-op

	parteRepo := NewParteRepuestoRepository(tx)
	movRepo := NewMovimientoInventarioRepository(tx)

	if err := fn(parteRepo, movRepo); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConflictoConcurrencia
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConflictoConcurrencia
		}
		return fmt.Errorf("confirmando transacción: %w", err)
	}
	return nil
}
