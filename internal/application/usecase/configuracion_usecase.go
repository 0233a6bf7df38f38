package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

const descripcionGananciaPorDefecto = "Porcentaje de ganancia aplicado al precio de compra para calcular el precio de venta sugerido."

// registradorActividad es el colaborador de auditoría que consume este caso
// de uso (fire-and-forget).
type registradorActividad interface {
	Registrar(ctx context.Context, registro entity.RegistroActividad)
}

// ConfiguracionUseCase administra configuraciones clave/valor del sistema,
// en particular el porcentaje de ganancia por defecto.
type ConfiguracionUseCase struct {
	repo      repository.ConfiguracionRepository
	actividad registradorActividad
}

// NewConfiguracionUseCase construye el caso de uso.
func NewConfiguracionUseCase(repo repository.ConfiguracionRepository, actividad registradorActividad) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{repo: repo, actividad: actividad}
}

// GetPorcentajeGanancia obtiene el porcentaje de ganancia por defecto.
func (uc *ConfiguracionUseCase) GetPorcentajeGanancia(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	config, err := uc.repo.Get(ctx, entity.ClavePorcentajeGanancia)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toConfiguracionResponse(config), nil
}

// SetPorcentajeGanancia establece o actualiza el porcentaje de ganancia por
// defecto. El valor debe ser un número no negativo.
func (uc *ConfiguracionUseCase) SetPorcentajeGanancia(ctx context.Context, in dto.ActualizarGananciaRequest, usuarioID, ipOrigen string) (*dto.ConfiguracionResponse, error) {
	if in.Valor == nil || in.Valor.IsNegative() {
		err := domain.ErrEntradaInvalida
		uc.registrarCambio(ctx, usuarioID, ipOrigen, in, err)
		return nil, err
	}

	descripcion := in.Descripcion
	if descripcion == "" {
		descripcion = descripcionGananciaPorDefecto
	}
	config := &entity.Configuracion{
		Clave:       entity.ClavePorcentajeGanancia,
		Valor:       in.Valor.String(),
		Descripcion: descripcion,
	}
	if err := uc.repo.Upsert(ctx, config); err != nil {
		uc.registrarCambio(ctx, usuarioID, ipOrigen, in, err)
		return nil, err
	}

	uc.registrarCambio(ctx, usuarioID, ipOrigen, in, nil)
	return toConfiguracionResponse(config), nil
}

func (uc *ConfiguracionUseCase) registrarCambio(ctx context.Context, usuarioID, ipOrigen string, in dto.ActualizarGananciaRequest, opErr error) {
	reg := entity.RegistroActividad{
		ID:          uuid.New().String(),
		FechaAccion: time.Now(),
		TipoAccion:  "actualizar_configuracion",
		ObjetoTipo:  "Configuracion",
		Resultado:   entity.ResultadoExito,
		IPOrigen:    ipOrigen,
	}
	if usuarioID != "" {
		id := usuarioID
		reg.UsuarioID = &id
	}
	detalle := map[string]any{"clave": entity.ClavePorcentajeGanancia}
	if in.Valor != nil {
		detalle["nuevo_valor"] = in.Valor.String()
	}
	if opErr != nil {
		reg.Resultado = entity.ResultadoFallo
		detalle["error"] = opErr.Error()
	}
	reg.CambiosDetalle, _ = json.Marshal(detalle)
	uc.actividad.Registrar(ctx, reg)
}

func toConfiguracionResponse(c *entity.Configuracion) *dto.ConfiguracionResponse {
	return &dto.ConfiguracionResponse{
		Clave:              c.Clave,
		Valor:              c.Valor,
		Descripcion:        c.Descripcion,
		FechaCreacion:      c.FechaCreacion,
		FechaActualizacion: c.FechaActualizacion,
	}
}
