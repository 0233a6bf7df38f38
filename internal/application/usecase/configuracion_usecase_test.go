package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type configuracionFake struct {
	valores map[string]*entity.Configuracion
}

func nuevoConfiguracionFake() *configuracionFake {
	return &configuracionFake{valores: map[string]*entity.Configuracion{}}
}

func (f *configuracionFake) Get(_ context.Context, clave string) (*entity.Configuracion, error) {
	c, ok := f.valores[clave]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *configuracionFake) Upsert(_ context.Context, config *entity.Configuracion) error {
	copia := *config
	f.valores[config.Clave] = &copia
	return nil
}

type actividadConfigFake struct {
	registros []entity.RegistroActividad
}

func (f *actividadConfigFake) Registrar(_ context.Context, registro entity.RegistroActividad) {
	f.registros = append(f.registros, registro)
}

func nuevoConfiguracionUC() (*ConfiguracionUseCase, *configuracionFake, *actividadConfigFake) {
	repo := nuevoConfiguracionFake()
	actividad := &actividadConfigFake{}
	return NewConfiguracionUseCase(repo, actividad), repo, actividad
}

// ──────────────────────────────────────────────────────────────────────────────
// GetPorcentajeGanancia
// ──────────────────────────────────────────────────────────────────────────────

func TestConfiguracionGet_ClaveInexistente(t *testing.T) {
	uc, _, _ := nuevoConfiguracionUC()

	resp, err := uc.GetPorcentajeGanancia(context.Background())

	require.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Nil(t, resp)
}

func TestConfiguracionGet_RetornaValorGuardado(t *testing.T) {
	uc, repo, _ := nuevoConfiguracionUC()
	repo.valores[entity.ClavePorcentajeGanancia] = &entity.Configuracion{
		Clave: entity.ClavePorcentajeGanancia,
		Valor: "25",
	}

	resp, err := uc.GetPorcentajeGanancia(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.ClavePorcentajeGanancia, resp.Clave)
	assert.Equal(t, "25", resp.Valor)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetPorcentajeGanancia
// ──────────────────────────────────────────────────────────────────────────────

func TestConfiguracionSet_GuardaConDescripcionPorDefecto(t *testing.T) {
	uc, repo, actividad := nuevoConfiguracionUC()

	resp, err := uc.SetPorcentajeGanancia(context.Background(), dto.ActualizarGananciaRequest{
		Valor: dec("30"),
	}, "admin-1", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "30", resp.Valor)
	assert.Equal(t, descripcionGananciaPorDefecto, resp.Descripcion)

	guardada := repo.valores[entity.ClavePorcentajeGanancia]
	require.NotNil(t, guardada, "la configuración debe quedar persistida")
	assert.Equal(t, "30", guardada.Valor)

	require.Len(t, actividad.registros, 1)
	assert.Equal(t, entity.ResultadoExito, actividad.registros[0].Resultado)
	assert.Equal(t, "actualizar_configuracion", actividad.registros[0].TipoAccion)
}

func TestConfiguracionSet_ConservaDescripcionPropia(t *testing.T) {
	uc, repo, _ := nuevoConfiguracionUC()

	_, err := uc.SetPorcentajeGanancia(context.Background(), dto.ActualizarGananciaRequest{
		Valor:       dec("15"),
		Descripcion: "margen promocional",
	}, "admin-1", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "margen promocional", repo.valores[entity.ClavePorcentajeGanancia].Descripcion)
}

func TestConfiguracionSet_ValorNegativoRechazado(t *testing.T) {
	uc, repo, actividad := nuevoConfiguracionUC()

	_, err := uc.SetPorcentajeGanancia(context.Background(), dto.ActualizarGananciaRequest{
		Valor: dec("-5"),
	}, "admin-1", "127.0.0.1")

	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, repo.valores, "no debe persistirse un valor negativo")

	require.Len(t, actividad.registros, 1)
	assert.Equal(t, entity.ResultadoFallo, actividad.registros[0].Resultado)
}

func TestConfiguracionSet_SinValorRechazado(t *testing.T) {
	uc, repo, _ := nuevoConfiguracionUC()

	_, err := uc.SetPorcentajeGanancia(context.Background(), dto.ActualizarGananciaRequest{}, "admin-1", "127.0.0.1")

	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, repo.valores)
}

func TestConfiguracionSet_ActualizaValorExistente(t *testing.T) {
	uc, repo, _ := nuevoConfiguracionUC()

	_, err := uc.SetPorcentajeGanancia(context.Background(), dto.ActualizarGananciaRequest{
		Valor: dec("20"),
	}, "admin-1", "127.0.0.1")
	require.NoError(t, err)

	_, err = uc.SetPorcentajeGanancia(context.Background(), dto.ActualizarGananciaRequest{
		Valor: dec("35"),
	}, "admin-1", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "35", repo.valores[entity.ClavePorcentajeGanancia].Valor)
}
