// migrate aplica las migraciones SQL embebidas del catálogo.
//
// Uso: go run ./cmd/migrate (lee la misma configuración de base de datos que el API).
package main

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/infrastructure/postgres"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	log.Info().Msg("aplicando migraciones")
	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migración de base de datos")
	}
	log.Info().Msg("migraciones aplicadas")
}
