package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestClasificacionErroresPg(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError("23505")))
	assert.False(t, isUniqueViolation(pgError("23503")))

	assert.True(t, isForeignKeyViolation(pgError("23503")))
	assert.False(t, isForeignKeyViolation(pgError("23505")))

	assert.True(t, isSerializationFailure(pgError("40001")))
	assert.True(t, isSerializationFailure(pgError("40P01")))
	assert.True(t, isSerializationFailure(pgError("55P03")))
	assert.False(t, isSerializationFailure(pgError("23505")))

	assert.True(t, isInvalidTextRepresentation(pgError("22P02")))
	assert.False(t, isInvalidTextRepresentation(pgError("23505")))
}

// Los repositorios envuelven los errores con fmt.Errorf %w: la clasificación
// debe seguir funcionando a través de la envoltura.
func TestClasificacionErroresPg_Envueltos(t *testing.T) {
	envuelto := fmt.Errorf("escaneando parte: %w", pgError("22P02"))
	assert.True(t, isInvalidTextRepresentation(envuelto))

	assert.False(t, isInvalidTextRepresentation(nil))
	assert.False(t, isInvalidTextRepresentation(assert.AnError))
}

// filaConError implementa pgx.Row devolviendo siempre el error dado.
type filaConError struct{ err error }

func (f filaConError) Scan(...any) error { return f.err }

// Un id que no es un UUID válido produce 22P02 al ejecutar la consulta; para
// una búsqueda por id eso equivale a "no existe" (nil, nil), no a un error
// interno.
func TestParteScanOne_IDNoUUID(t *testing.T) {
	repo := &ParteRepuestoRepository{}

	parte, err := repo.scanOne(filaConError{err: pgError("22P02")})
	require.NoError(t, err)
	assert.Nil(t, parte)

	parte, err = repo.scanOne(filaConError{err: pgx.ErrNoRows})
	require.NoError(t, err)
	assert.Nil(t, parte)

	_, err = repo.scanOne(filaConError{err: pgError("23505")})
	assert.Error(t, err, "otros errores de Postgres sí se propagan")
}
