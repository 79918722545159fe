// seed crea los datos mínimos para operar una instalación nueva: el usuario
// ROOT inicial y una bodega principal. Es idempotente: si el usuario o la
// bodega ya existen no hace nada.
//
// Uso: go run ./cmd/seed
// La contraseña del ROOT se toma de SEED_ROOT_PASSWORD (obligatoria).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-pro/pkg/config"
)

func main() {
	password := os.Getenv("SEED_ROOT_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ROOT_PASSWORD es obligatoria")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername("root")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario root: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("Usuario root ya existe, nada que hacer")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
			os.Exit(1)
		}
		root := &entity.User{
			Username:     "root",
			Email:        "root@localhost",
			PasswordHash: string(hash),
			Role:         entity.RoleRoot,
			Status:       entity.UserStatusActive,
			CreatedAt:    time.Now(),
		}
		if err := users.Create(root); err != nil {
			fmt.Fprintf(os.Stderr, "Crear usuario root: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario root creado (id %d)\n", root.ID)
	}

	warehouses := postgres.NewWarehouseRepository(pool)
	list, err := warehouses.List(1, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar bodegas: %v\n", err)
		os.Exit(1)
	}
	if len(list) > 0 {
		fmt.Println("Ya existen bodegas, nada que hacer")
		return
	}
	now := time.Now()
	wh := &entity.Warehouse{Name: "Bodega principal", CreatedAt: now, UpdatedAt: now}
	if err := warehouses.Create(wh); err != nil {
		fmt.Fprintf(os.Stderr, "Crear bodega principal: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Bodega principal creada (id %d)\n", wh.ID)
}
