package inventory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/pricing"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// Cota superior para la cantidad de un movimiento. Por encima de esto la
// entrada se considera inválida antes de tocar la BD.
var maxCantidadMovimiento = decimal.NewFromInt(1_000_000_000)

// RegistrarMovimientoUseCase aplica movimientos de inventario (entrada,
// salida, ajuste, transferencia) de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. Es el único camino de código que
// muta ParteRepuesto.Cantidad.
type RegistrarMovimientoUseCase struct {
	txRunner  TxRunner
	actividad ActivityLogger
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner, actividad ActivityLogger) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner, actividad: actividad}
}

// MovimientoInputDTO entrada para registrar un movimiento de inventario.
// Cantidad debe ser un entero (se valida, no se trunca). Para entrada:
// ProveedorID, PrecioCompraUnitario y PorcentajeGanancia son opcionales.
// Para transferencia: UbicacionDestino es obligatoria.
type MovimientoInputDTO struct {
	ParteRepuestoID      string
	TipoMovimiento       string
	Cantidad             decimal.Decimal
	Descripcion          string
	UbicacionDestino     string
	ProveedorID          *string
	PrecioCompraUnitario *decimal.Decimal
	PorcentajeGanancia   *decimal.Decimal
	UsuarioID            string
	IPOrigen             string
}

// ResultadoMovimiento es la unidad atómica que devuelve el motor: la parte
// ya actualizada y el movimiento insertado en el libro.
type ResultadoMovimiento struct {
	Parte      *entity.ParteRepuesto
	Movimiento *entity.MovimientoInventario
}

// RegistrarMovimiento valida la entrada, inicia una transacción, bloquea la
// fila de la parte, aplica la lógica según tipo y hace Commit o Rollback.
// Estados de la invocación: validando → mutando → registrando → confirmado,
// o abortado en cualquier paso sin efectos parciales observables.
func (uc *RegistrarMovimientoUseCase) RegistrarMovimiento(ctx context.Context, input MovimientoInputDTO) (*ResultadoMovimiento, error) {
	cantidad, err := uc.validar(input)
	if err != nil {
		uc.registrarActividad(ctx, input, nil, err)
		return nil, err
	}

	now := time.Now()
	var resultado *ResultadoMovimiento

	err = uc.txRunner.Run(ctx, func(
		parteRepo repository.ParteRepuestoRepository,
		movRepo repository.MovimientoInventarioRepository,
	) error {
		// Bloquea la fila de la parte: dos movimientos concurrentes sobre la
		// misma parte nunca leen la misma cantidad y computan ambos desde ella.
		parte, err := parteRepo.GetForUpdate(ctx, input.ParteRepuestoID)
		if err != nil {
			return err
		}
		if parte == nil {
			return domain.ErrParteNoEncontrada
		}

		mov := &entity.MovimientoInventario{
			ID:                    uuid.New().String(),
			ParteRepuestoID:       parte.ID,
			UsuarioID:             input.UsuarioID,
			TipoMovimiento:        input.TipoMovimiento,
			CantidadMovimiento:    cantidad,
			DescripcionMovimiento: input.Descripcion,
			FechaMovimiento:       now,
		}

		switch input.TipoMovimiento {
		case entity.TipoEntrada:
			uc.aplicarEntrada(parte, mov, input, cantidad)
		case entity.TipoSalida:
			if parte.Cantidad < cantidad {
				return domain.ErrStockInsuficiente
			}
			parte.Cantidad -= cantidad
		case entity.TipoAjuste:
			if parte.Cantidad+cantidad < 0 {
				return domain.ErrStockNegativo
			}
			parte.Cantidad += cantidad
		case entity.TipoTransferencia:
			// No cambia la cantidad total; la cantidad transferida debe estar
			// cubierta por el stock y se registra la ubicación previa como origen.
			if parte.Cantidad < cantidad {
				return domain.ErrStockInsuficiente
			}
			origen := parte.Ubicacion
			destino := input.UbicacionDestino
			mov.UbicacionOrigen = &origen
			mov.UbicacionDestino = &destino
			parte.Ubicacion = destino
		}

		parte.FechaActualizacion = now
		if err := parteRepo.Save(ctx, parte); err != nil {
			return err
		}
		if err := movRepo.Insert(ctx, mov); err != nil {
			return err
		}
		resultado = &ResultadoMovimiento{Parte: parte, Movimiento: mov}
		return nil
	})

	uc.registrarActividad(ctx, input, resultado, err)
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// validar revisa tipo y cantidad antes de abrir la transacción.
// Devuelve la cantidad ya convertida a entero.
func (uc *RegistrarMovimientoUseCase) validar(input MovimientoInputDTO) (int64, error) {
	if !entity.TipoMovimientoValido(input.TipoMovimiento) {
		return 0, domain.ErrTipoMovimientoInvalido
	}
	if !input.Cantidad.IsInteger() || input.Cantidad.Abs().GreaterThan(maxCantidadMovimiento) {
		return 0, domain.ErrCantidadInvalida
	}
	cantidad := input.Cantidad.IntPart()

	switch input.TipoMovimiento {
	case entity.TipoAjuste:
		// El ajuste admite signo, pero un ajuste de cero no es un movimiento.
		if cantidad == 0 {
			return 0, domain.ErrCantidadInvalida
		}
	case entity.TipoTransferencia:
		if cantidad <= 0 {
			return 0, domain.ErrCantidadInvalida
		}
		if input.UbicacionDestino == "" {
			return 0, domain.ErrDestinoRequerido
		}
	default: // entrada, salida
		if cantidad <= 0 {
			return 0, domain.ErrCantidadInvalida
		}
	}

	if input.PrecioCompraUnitario != nil && input.PrecioCompraUnitario.IsNegative() {
		return 0, domain.ErrEntradaInvalida
	}
	if input.PorcentajeGanancia != nil && input.PorcentajeGanancia.IsNegative() {
		return 0, domain.ErrEntradaInvalida
	}
	return cantidad, nil
}

// aplicarEntrada suma stock y aplica la política de trinquete de precios:
// un precio de compra entrante solo actualiza el precio de referencia de la
// parte cuando es estrictamente mayor al almacenado; un precio menor se
// registra en el movimiento pero no sobreescribe la referencia histórica.
func (uc *RegistrarMovimientoUseCase) aplicarEntrada(parte *entity.ParteRepuesto, mov *entity.MovimientoInventario, input MovimientoInputDTO, cantidad int64) {
	parte.Cantidad += cantidad
	mov.ProveedorID = input.ProveedorID
	mov.PrecioCompraUnitario = input.PrecioCompraUnitario
	mov.PorcentajeGananciaAplicado = input.PorcentajeGanancia

	if input.PrecioCompraUnitario == nil {
		return
	}
	if parte.PrecioCompra != nil && !input.PrecioCompraUnitario.GreaterThan(*parte.PrecioCompra) {
		return
	}
	parte.PrecioCompra = input.PrecioCompraUnitario
	if input.PorcentajeGanancia != nil {
		parte.PorcentajeGanancia = input.PorcentajeGanancia
	}
	parte.PrecioVentaSugerido = pricing.CalcularPrecioVenta(parte.PrecioCompra, parte.PorcentajeGanancia)
}

// registrarActividad escribe el resultado en el log de actividad.
// Fire-and-forget: nunca altera el resultado del movimiento.
func (uc *RegistrarMovimientoUseCase) registrarActividad(ctx context.Context, input MovimientoInputDTO, resultado *ResultadoMovimiento, opErr error) {
	reg := entity.RegistroActividad{
		ID:          uuid.New().String(),
		FechaAccion: time.Now(),
		TipoAccion:  "crear_movimiento_" + input.TipoMovimiento,
		ObjetoTipo:  "MovimientoInventario",
		Resultado:   entity.ResultadoExito,
		IPOrigen:    input.IPOrigen,
	}
	if input.UsuarioID != "" {
		usuarioID := input.UsuarioID
		reg.UsuarioID = &usuarioID
	}
	detalle := map[string]any{
		"parte_repuesto_id": input.ParteRepuestoID,
		"tipo_movimiento":   input.TipoMovimiento,
		"cantidad":          input.Cantidad.String(),
	}
	if opErr != nil {
		reg.Resultado = entity.ResultadoFallo
		detalle["error"] = opErr.Error()
	} else if resultado != nil {
		movID := resultado.Movimiento.ID
		reg.ObjetoID = &movID
		detalle["cantidad_resultante"] = resultado.Parte.Cantidad
	}
	reg.CambiosDetalle, _ = json.Marshal(detalle)
	uc.actividad.Registrar(ctx, reg)
}
