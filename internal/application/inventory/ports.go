package inventory

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: parte actualizada y movimiento insertado se confirman juntos
// o no se confirma ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parteRepo repository.ParteRepuestoRepository,
		movRepo repository.MovimientoInventarioRepository,
	) error) error
}

// ActivityLogger registra el resultado de una operación en el log de
// actividad. Es fire-and-forget: se invoca después del commit (o del
// rollback) y sus fallos nunca afectan el resultado del movimiento.
type ActivityLogger interface {
	Registrar(ctx context.Context, registro entity.RegistroActividad)
}
