package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/imobiflow/imobiflow-api/infrastructure/database/postgres"
	"github.com/imobiflow/imobiflow-api/infrastructure/repository"
	"github.com/imobiflow/imobiflow-api/internal/api"
	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/content"
	"github.com/imobiflow/imobiflow-api/internal/scheduler"
	"github.com/imobiflow/imobiflow-api/internal/usecases/authenticating"
	"github.com/imobiflow/imobiflow-api/internal/usecases/dashboard"
	"github.com/imobiflow/imobiflow-api/internal/usecases/listing"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

func main() {
	// O .env é procurado a partir de cmd/api
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	propertyRepo := repository.NewPropertyRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	dashboardService := dashboard.NewService(propertyRepo, cfg)
	// O painel é notificado a cada mutação para recalcular a carteira do dono
	listingService := listing.NewService(propertyRepo, dashboardService, cfg)
	contentService := content.NewService()

	statsRefreshService := scheduler.NewStatsRefreshService(dashboardService, cfg)
	if err := statsRefreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de atualização de estatísticas")
	} else {
		log.L.Info("Agendador de atualização de estatísticas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Dashboard:     dashboardService,
		Listing:       listingService,
		Content:       contentService,
		StatsRefresh:  statsRefreshService,
		Database:      pgConn,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
