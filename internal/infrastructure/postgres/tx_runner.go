package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tilestrack-api/internal/application/usecase"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta una función de negocio dentro de una única transacción,
// con los repositorios de productos y ventas ligados a la misma conexión.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor transaccional sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre la transacción, invoca fn y confirma solo si fn no falla.
// Cualquier error de fn o del commit deja la base sin cambios parciales.
func (t *TxRunner) Run(ctx context.Context, fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("tx begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewProductRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	return nil
}
