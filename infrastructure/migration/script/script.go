package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/imobiflow/imobiflow-api/infrastructure/database/postgres"
	"github.com/imobiflow/imobiflow-api/infrastructure/migration"
	"github.com/imobiflow/imobiflow-api/infrastructure/repository"
	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/usecases/authenticating"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

func main() {
	seed := flag.Bool("seed", true, "cria o usuário de demonstração e sua carteira")
	demoName := flag.String("demo-name", "Usuário Demonstração", "nome do usuário de demonstração")
	demoPassword := flag.String("demo-password", "imobiflow123", "senha do usuário de demonstração")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)
	log.L.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return migration.Migrate(ctx, tx)
	})
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao aplicar o schema")
	}

	if !*seed {
		log.L.Info("Seed desabilitado, migração concluída")
		return
	}

	userRepo := repository.NewUserRepository(conn)
	propertyRepo := repository.NewPropertyRepository(conn)
	authenticator := authenticating.NewService(userRepo, cfg)

	count, err := migration.SeedDemo(ctx, userRepo, propertyRepo, authenticator, migration.DemoUser{
		Name:     *demoName,
		Email:    cfg.App.DemoEmail,
		Password: *demoPassword,
	})
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao popular dados de demonstração")
	}

	log.L.Infof("Migração concluída. Imóveis de demonstração inseridos: %d", count)
}
