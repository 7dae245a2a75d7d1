package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/usecases/dashboard"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

const defaultMaxConcurrentRefreshes = 4

// StatsRefreshConfig representa a configuração do agendador de estatísticas do painel
type StatsRefreshConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	Enabled           bool
}

// StatsRefreshService recalcula periodicamente as estatísticas dos usuários já atendidos pelo painel
type StatsRefreshService struct {
	scheduler *gocron.Scheduler
	config    StatsRefreshConfig
	dashboard dashboard.Dashboarder
	ctx       context.Context

	mu                     sync.Mutex
	running                bool
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshOwners      int
}

func NewStatsRefreshService(dashboardService dashboard.Dashboarder, appConfig *config.Config) *StatsRefreshService {
	refreshConfig := StatsRefreshConfig{
		CronSchedule:      appConfig.StatsRefresh.CronSchedule,
		MaxConcurrentJobs: defaultMaxConcurrentRefreshes,
		Enabled:           appConfig.StatsRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"enabled":             refreshConfig.Enabled,
	}).Info("Configuração do agendador de estatísticas carregada")

	return &StatsRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dashboard: dashboardService,
		ctx:       context.Background(),
	}
}

// Start agenda a atualização e para o agendador quando o contexto é cancelado
func (s *StatsRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Atualização periódica de estatísticas desabilitada por configuração")
		return nil
	}

	s.ctx = ctx

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de estatísticas do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshAll()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de estatísticas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de estatísticas do painel")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshAll atualiza as estatísticas de todos os usuários conhecidos; execuções sobrepostas são ignoradas
func (s *StatsRefreshService) RefreshAll() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.L.Info("Atualização de estatísticas já em andamento, ignorando")
		return
	}
	s.running = true
	startTime := time.Now()
	s.lastRefreshStartedAt = startTime
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	owners := s.dashboard.TrackedOwners()
	if len(owners) == 0 {
		log.L.Debug("Nenhum usuário com estatísticas em memória")
		s.markCompleted(0)
		return
	}

	semaphore := make(chan struct{}, max(1, s.config.MaxConcurrentJobs))
	var wg sync.WaitGroup

	for _, userID := range owners {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(userID int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.dashboard.FetchStats(s.ctx, userID)
		}(userID)
	}

	wg.Wait()
	s.markCompleted(len(owners))

	log.L.WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"owners":   len(owners),
	}).Info("Atualização de estatísticas concluída")
}

func (s *StatsRefreshService) markCompleted(owners int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRefreshCompletedAt = time.Now()
	s.lastRefreshOwners = owners
}

// TriggerManualSync dispara a atualização em segundo plano
func (s *StatsRefreshService) TriggerManualSync() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.L.Info("Atualização de estatísticas já em andamento, ignorando solicitação manual")
		return
	}
	s.mu.Unlock()

	log.L.Info("Iniciando atualização manual de estatísticas")
	go s.RefreshAll()
}

func (s *StatsRefreshService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// GetStatus retorna o status atual do agendador
func (s *StatsRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":                   s.config.Enabled,
		"cron":                      s.config.CronSchedule,
		"max_concurrent":            s.config.MaxConcurrentJobs,
		"running":                   s.running,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_owners":       s.lastRefreshOwners,
	}
}
