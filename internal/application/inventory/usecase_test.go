package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerpro/repuestos-api/internal/application/inventory"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del motor de movimientos.
//
// almacenFake implementa inventory.TxRunner con un mutex que serializa las
// transacciones (equivalente en memoria del bloqueo de fila) y con semántica
// de rollback: si fn devuelve error, el estado vuelve al snapshot previo.
// ──────────────────────────────────────────────────────────────────────────────

type almacenFake struct {
	mu          sync.Mutex
	partes      map[string]entity.ParteRepuesto
	movimientos []entity.MovimientoInventario

	fallarInsertMovimiento bool // induce fallo después de guardar la parte
}

func nuevoAlmacen(partes ...entity.ParteRepuesto) *almacenFake {
	a := &almacenFake{partes: make(map[string]entity.ParteRepuesto)}
	for _, p := range partes {
		a.partes[p.ID] = p
	}
	return a
}

func (a *almacenFake) Run(ctx context.Context, fn func(
	parteRepo repository.ParteRepuestoRepository,
	movRepo repository.MovimientoInventarioRepository,
) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapPartes := make(map[string]entity.ParteRepuesto, len(a.partes))
	for k, v := range a.partes {
		snapPartes[k] = v
	}
	snapMovs := len(a.movimientos)

	if err := fn(&parteRepoFake{a}, &movRepoFake{a}); err != nil {
		a.partes = snapPartes
		a.movimientos = a.movimientos[:snapMovs]
		return err
	}
	return nil
}

func (a *almacenFake) parte(id string) entity.ParteRepuesto {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.partes[id]
}

func (a *almacenFake) totalMovimientos() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.movimientos)
}

type parteRepoFake struct{ a *almacenFake }

func (r *parteRepoFake) GetForUpdate(_ context.Context, id string) (*entity.ParteRepuesto, error) {
	p, ok := r.a.partes[id]
	if !ok {
		return nil, nil
	}
	copia := p
	return &copia, nil
}

func (r *parteRepoFake) Save(_ context.Context, parte *entity.ParteRepuesto) error {
	r.a.partes[parte.ID] = *parte
	return nil
}

func (r *parteRepoFake) GetByID(ctx context.Context, id string) (*entity.ParteRepuesto, error) {
	return r.GetForUpdate(ctx, id)
}

func (r *parteRepoFake) Create(context.Context, *entity.ParteRepuesto) error { return nil }
func (r *parteRepoFake) GetByNumeroParte(context.Context, string) (*entity.ParteRepuesto, error) {
	return nil, nil
}
func (r *parteRepoFake) Update(context.Context, *entity.ParteRepuesto) error { return nil }
func (r *parteRepoFake) List(context.Context, repository.ListadoPartesFiltro) ([]*entity.ParteRepuesto, int64, error) {
	return nil, 0, nil
}
func (r *parteRepoFake) Delete(context.Context, string) error { return nil }

type movRepoFake struct{ a *almacenFake }

func (r *movRepoFake) Insert(_ context.Context, mov *entity.MovimientoInventario) error {
	if r.a.fallarInsertMovimiento {
		return assert.AnError
	}
	r.a.movimientos = append(r.a.movimientos, *mov)
	return nil
}

func (r *movRepoFake) GetByID(context.Context, string) (*entity.MovimientoInventario, error) {
	return nil, nil
}
func (r *movRepoFake) ListByParte(context.Context, string, *time.Time, *time.Time, int, int) ([]*entity.MovimientoInventario, error) {
	return nil, nil
}
func (r *movRepoFake) CountByParte(context.Context, string) (int64, error) { return 0, nil }

// actividadFake acumula los registros de actividad recibidos.
type actividadFake struct {
	mu        sync.Mutex
	registros []entity.RegistroActividad
}

func (f *actividadFake) Registrar(_ context.Context, reg entity.RegistroActividad) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registros = append(f.registros, reg)
}

func (f *actividadFake) ultimo() entity.RegistroActividad {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registros[len(f.registros)-1]
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	parteID   = "parte-001"
	usuarioID = "usuario-001"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func parteBase() entity.ParteRepuesto {
	return entity.ParteRepuesto{
		ID:             parteID,
		Nombre:         "Filtro de aceite",
		NumeroParte:    "FO-1234",
		Cantidad:       10,
		CantidadMinima: 5,
		Ubicacion:      "Bodega A",
		Activo:         true,
	}
}

func nuevoUC(a *almacenFake) (*inventory.RegistrarMovimientoUseCase, *actividadFake) {
	act := &actividadFake{}
	return inventory.NewRegistrarMovimientoUseCase(a, act), act
}

func input(tipo string, cantidad int64) inventory.MovimientoInputDTO {
	return inventory.MovimientoInputDTO{
		ParteRepuestoID: parteID,
		TipoMovimiento:  tipo,
		Cantidad:        decimal.NewFromInt(cantidad),
		UsuarioID:       usuarioID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMovimiento_EntradaSumaStock(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, act := nuevoUC(a)

	res, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoEntrada, 5))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, int64(15), res.Parte.Cantidad, "10 + 5 = 15")
	assert.Equal(t, int64(15), a.parte(parteID).Cantidad, "el stock persistido debe coincidir")
	assert.Equal(t, 1, a.totalMovimientos(), "exactamente un movimiento en el libro")
	assert.Equal(t, entity.TipoEntrada, res.Movimiento.TipoMovimiento)
	assert.Equal(t, int64(5), res.Movimiento.CantidadMovimiento)
	assert.Equal(t, usuarioID, res.Movimiento.UsuarioID)
	assert.False(t, res.Movimiento.FechaMovimiento.IsZero(), "la fecha la asigna el servidor")
	assert.Equal(t, entity.ResultadoExito, act.ultimo().Resultado)
}

func TestRegistrarMovimiento_EntradaPrecioMayorActualizaReferencia(t *testing.T) {
	parte := parteBase()
	parte.PrecioCompra = dec("100")
	parte.PorcentajeGanancia = dec("20")
	parte.PrecioVentaSugerido = dec("120.00")
	a := nuevoAlmacen(parte)
	uc, _ := nuevoUC(a)

	in := input(entity.TipoEntrada, 3)
	in.PrecioCompraUnitario = dec("120")
	in.PorcentajeGanancia = dec("25")
	proveedor := "prov-001"
	in.ProveedorID = &proveedor

	res, err := uc.RegistrarMovimiento(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, res.Parte.PrecioCompra)
	assert.Equal(t, "120", res.Parte.PrecioCompra.String())
	assert.Equal(t, "25", res.Parte.PorcentajeGanancia.String())
	assert.Equal(t, "150.00", res.Parte.PrecioVentaSugerido.StringFixed(2), "120 * 1.25")
	assert.Equal(t, "120", res.Movimiento.PrecioCompraUnitario.String())
	assert.Equal(t, &proveedor, res.Movimiento.ProveedorID)
}

// Política de trinquete: un precio entrante menor al almacenado se registra
// en el movimiento pero no pisa el precio de referencia de la parte.
func TestRegistrarMovimiento_EntradaPrecioMenorNoPisaReferencia(t *testing.T) {
	parte := parteBase()
	parte.PrecioCompra = dec("100")
	parte.PorcentajeGanancia = dec("20")
	parte.PrecioVentaSugerido = dec("120.00")
	a := nuevoAlmacen(parte)
	uc, _ := nuevoUC(a)

	in := input(entity.TipoEntrada, 3)
	in.PrecioCompraUnitario = dec("80")
	in.PorcentajeGanancia = dec("50")

	res, err := uc.RegistrarMovimiento(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "100", res.Parte.PrecioCompra.String(), "la referencia no baja")
	assert.Equal(t, "20", res.Parte.PorcentajeGanancia.String())
	assert.Equal(t, "120.00", res.Parte.PrecioVentaSugerido.StringFixed(2))
	assert.Equal(t, "80", res.Movimiento.PrecioCompraUnitario.String(),
		"el movimiento sí conserva el precio real de la compra")
}

func TestRegistrarMovimiento_EntradaSinPrecioAlmacenadoLoEstablece(t *testing.T) {
	a := nuevoAlmacen(parteBase()) // sin precios
	uc, _ := nuevoUC(a)

	in := input(entity.TipoEntrada, 1)
	in.PrecioCompraUnitario = dec("99.99")
	in.PorcentajeGanancia = dec("15")

	res, err := uc.RegistrarMovimiento(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "99.99", res.Parte.PrecioCompra.String())
	assert.Equal(t, "114.99", res.Parte.PrecioVentaSugerido.StringFixed(2))
}

func TestRegistrarMovimiento_EntradaCantidadNegativa(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoEntrada, -3))
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
	assert.Equal(t, int64(10), a.parte(parteID).Cantidad, "el stock no cambia")
	assert.Equal(t, 0, a.totalMovimientos())
}

// ──────────────────────────────────────────────────────────────────────────────
// Salida y ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMovimiento_SalidaRestaStock(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	res, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoSalida, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Parte.Cantidad)
}

func TestRegistrarMovimiento_SalidaStockInsuficiente(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, act := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoSalida, 11))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Equal(t, int64(10), a.parte(parteID).Cantidad, "el stock queda intacto")
	assert.Equal(t, 0, a.totalMovimientos(), "nada se escribe en el libro")
	assert.Equal(t, entity.ResultadoFallo, act.ultimo().Resultado)
}

func TestRegistrarMovimiento_AjusteNegativo(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	res, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoAjuste, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Parte.Cantidad)
	assert.Equal(t, int64(-7), res.Movimiento.CantidadMovimiento,
		"el ajuste conserva el signo en el libro")
}

func TestRegistrarMovimiento_AjusteResultadoNegativo(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoAjuste, -11))
	assert.ErrorIs(t, err, domain.ErrStockNegativo)
	assert.Equal(t, int64(10), a.parte(parteID).Cantidad)
}

func TestRegistrarMovimiento_AjusteCero(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoAjuste, 0))
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencia
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMovimiento_TransferenciaCambiaUbicacionNoCantidad(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	in := input(entity.TipoTransferencia, 5)
	in.UbicacionDestino = "Bodega B"

	res, err := uc.RegistrarMovimiento(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.Parte.Cantidad, "la transferencia no afecta el total")
	assert.Equal(t, "Bodega B", res.Parte.Ubicacion)
	require.NotNil(t, res.Movimiento.UbicacionOrigen)
	assert.Equal(t, "Bodega A", *res.Movimiento.UbicacionOrigen,
		"el origen es la ubicación previa a la transferencia")
	assert.Equal(t, "Bodega B", *res.Movimiento.UbicacionDestino)
}

func TestRegistrarMovimiento_TransferenciaSinDestino(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoTransferencia, 5))
	assert.ErrorIs(t, err, domain.ErrDestinoRequerido)
}

func TestRegistrarMovimiento_TransferenciaSinCobertura(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	in := input(entity.TipoTransferencia, 11)
	in.UbicacionDestino = "Bodega B"

	_, err := uc.RegistrarMovimiento(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Equal(t, "Bodega A", a.parte(parteID).Ubicacion, "la ubicación no cambia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMovimiento_TipoInvalido(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input("devolucion", 1))
	assert.ErrorIs(t, err, domain.ErrTipoMovimientoInvalido)
}

func TestRegistrarMovimiento_CantidadNoEntera(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	in := input(entity.TipoEntrada, 0)
	in.Cantidad = decimal.RequireFromString("1.5")

	_, err := uc.RegistrarMovimiento(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida, "no se trunca: se rechaza")
}

func TestRegistrarMovimiento_PrecioCompraNegativo(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	in := input(entity.TipoEntrada, 5)
	in.PrecioCompraUnitario = dec("-10")

	_, err := uc.RegistrarMovimiento(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Equal(t, int64(10), a.parte(parteID).Cantidad)
}

func TestRegistrarMovimiento_PorcentajeGananciaNegativo(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	uc, _ := nuevoUC(a)

	in := input(entity.TipoEntrada, 5)
	in.PrecioCompraUnitario = dec("100")
	in.PorcentajeGanancia = dec("-20")

	_, err := uc.RegistrarMovimiento(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Equal(t, int64(10), a.parte(parteID).Cantidad, "el stock no cambia")
	assert.Equal(t, 0, a.totalMovimientos())
}

func TestRegistrarMovimiento_ParteInexistente(t *testing.T) {
	a := nuevoAlmacen() // sin partes
	uc, _ := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoEntrada, 1))
	assert.ErrorIs(t, err, domain.ErrParteNoEncontrada)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad y concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Induce un fallo después de guardar la parte y antes de insertar el
// movimiento: la transacción debe revertirse completa (ni parte actualizada
// ni movimiento registrado).
func TestRegistrarMovimiento_RollbackSiFallaElLibro(t *testing.T) {
	a := nuevoAlmacen(parteBase())
	a.fallarInsertMovimiento = true
	uc, act := nuevoUC(a)

	_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoEntrada, 5))
	require.Error(t, err)

	assert.Equal(t, int64(10), a.parte(parteID).Cantidad,
		"la actualización de la parte se revierte junto con el movimiento")
	assert.Equal(t, 0, a.totalMovimientos())
	assert.Equal(t, entity.ResultadoFallo, act.ultimo().Resultado)
}

// N movimientos concurrentes de ±1 sobre la misma parte: sin lost updates,
// la cantidad final es exactamente la suma de los deltas aplicados.
func TestRegistrarMovimiento_ConcurrenciaSinLostUpdates(t *testing.T) {
	parte := parteBase()
	parte.Cantidad = 100
	a := nuevoAlmacen(parte)
	uc, _ := nuevoUC(a)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoAjuste, 1))
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := uc.RegistrarMovimiento(context.Background(), input(entity.TipoAjuste, -1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), a.parte(parteID).Cantidad,
		"100 + n*(+1) + n*(-1) = 100")
	assert.Equal(t, 2*n, a.totalMovimientos())
}

// Escenario completo de extremo a extremo sobre una misma parte.
func TestRegistrarMovimiento_Escenario(t *testing.T) {
	a := nuevoAlmacen(parteBase()) // cantidad 10, mínima 5
	uc, _ := nuevoUC(a)
	ctx := context.Background()

	res, err := uc.RegistrarMovimiento(ctx, input(entity.TipoEntrada, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.Parte.Cantidad)

	_, err = uc.RegistrarMovimiento(ctx, input(entity.TipoSalida, 20))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Equal(t, int64(15), a.parte(parteID).Cantidad)

	_, err = uc.RegistrarMovimiento(ctx, input(entity.TipoAjuste, -20))
	assert.ErrorIs(t, err, domain.ErrStockNegativo)
	assert.Equal(t, int64(15), a.parte(parteID).Cantidad)

	res, err = uc.RegistrarMovimiento(ctx, input(entity.TipoAjuste, -15))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Parte.Cantidad)
	assert.Equal(t, 2, a.totalMovimientos(), "solo los movimientos exitosos quedan en el libro")
}
