// seed crea el usuario administrador inicial si no existe.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_CORREO y SEED_ADMIN_CONTRASENA del entorno (o .env);
// por defecto admin@taller.local. La contraseña es obligatoria.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/infrastructure/postgres"
	"github.com/tallerpro/repuestos-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	correo := os.Getenv("SEED_ADMIN_CORREO")
	if correo == "" {
		correo = "admin@taller.local"
	}
	contrasena := os.Getenv("SEED_ADMIN_CONTRASENA")
	if contrasena == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_CONTRASENA es obligatoria")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewUsuarioRepository(pool)

	existente, err := repo.GetByCorreo(ctx, correo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existente != nil {
		fmt.Printf("el usuario %s ya existe, nada que hacer\n", correo)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	admin := &entity.Usuario{
		ID:                uuid.NewString(),
		NombreUsuario:     "admin",
		CorreoElectronico: correo,
		ContrasenaHash:    string(hash),
		Rol:               entity.RolAdministrador,
		Activo:            true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("administrador %s creado (id %s)\n", correo, admin.ID)
}
