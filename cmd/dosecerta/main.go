package main

import (
	"context"

	"github.com/dosedata/dose-certa/internal/application/auth"
	"github.com/dosedata/dose-certa/internal/application/seed"
	"github.com/dosedata/dose-certa/internal/infrastructure/sqlite"
	"github.com/dosedata/dose-certa/pkg/config"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// Bootstrap do Dose Certa: abre o banco embutido, garante o schema, cria a
// conta padrão e povoa os dados de referência. A camada de UI (colaborador
// externo) usa os mesmos pacotes e parte deste estado pronto.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	store, err := sqlite.Open(cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao banco de dados")
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("inicialização do schema")
	}

	userRepo := sqlite.NewUserRepository(store, log)
	catalogRepo := sqlite.NewCatalogRepository(store, log)
	itemRepo := sqlite.NewItemRepository(store, log)

	// O schema precisa existir antes do bootstrap da conta padrão.
	authSvc := auth.NewService(userRepo, log)
	if err := authSvc.CreateDefaultAccount(); err != nil {
		log.Fatal().Err(err).Msg("criação da conta padrão")
	}

	seeder := seed.NewSeeder(catalogRepo, itemRepo, log)
	if err := seeder.Run(); err != nil {
		log.Fatal().Err(err).Msg("povoamento dos dados de referência")
	}

	log.Info().Str("db", store.Path()).Msg("banco de dados pronto para uso")
}
