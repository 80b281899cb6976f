// seed crea los datos mínimos para arrancar un entorno nuevo: la cuenta
// administradora, la bodega principal y un par de categorías del menú.
//
// Uso: go run ./cmd/seed
// El correo y la contraseña del admin se toman de SEED_ADMIN_EMAIL y
// SEED_ADMIN_PASSWORD (por defecto admin@resto.local / admin123).
// Es idempotente: los registros ya existentes se dejan intactos.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/resto-crm/internal/domain/policy"
	"github.com/tu-usuario/resto-crm/internal/infrastructure/postgres"
	"github.com/tu-usuario/resto-crm/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.ApplyMigrations(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar migraciones: %v\n", err)
		os.Exit(1)
	}

	email := envOr("SEED_ADMIN_EMAIL", "admin@resto.local")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, full_name, password_hash, role)
		VALUES ($1, $2, 'Administrador', $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), email, string(hash), policy.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	if tag.RowsAffected() > 0 {
		fmt.Printf("Cuenta admin creada: %s\n", email)
	} else {
		fmt.Printf("Cuenta admin ya existía: %s\n", email)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO warehouses (id, name)
		SELECT $1, 'Bodega principal'
		WHERE NOT EXISTS (SELECT 1 FROM warehouses)`,
		uuid.NewString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear bodega: %v\n", err)
		os.Exit(1)
	}

	for _, name := range []string{"Platos fuertes", "Bebidas", "Postres"} {
		_, err = pool.Exec(ctx, `
			INSERT INTO categories (id, name)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM categories WHERE name = $2)`,
			uuid.NewString(), name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear categoría %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	fmt.Println("Datos iniciales listos")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
