package dashboard

import (
	"context"
	"sort"
	"sync"

	"github.com/imobiflow/imobiflow-api/infrastructure/repository"
	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/pkg/currency"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Dashboarder interface {
	// FetchStats consulta o estoque do usuário; em caso de falha devolve o último valor conhecido
	FetchStats(ctx context.Context, userID int) domain.DashboardStats
	// GetDashboard monta a resposta completa do painel para a sessão
	GetDashboard(ctx context.Context, session *domain.Session) *domain.DashboardResponse
	// PropertyChanged é chamado após criação ou edição de imóveis do usuário
	PropertyChanged(ctx context.Context, userID int)
	// TrackedOwners lista os usuários com estatísticas em memória
	TrackedOwners() []int
}

type Service struct {
	propertyRepo repository.PropertyRepository
	insights     *InsightCache
	demoEmail    string

	mu        sync.RWMutex
	snapshots map[int]domain.DashboardStats
}

func NewService(propertyRepo repository.PropertyRepository, cfg *config.Config) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		insights:     NewInsightCache(defaultCacheCapacity),
		demoEmail:    cfg.App.DemoEmail,
		snapshots:    make(map[int]domain.DashboardStats),
	}
}

func (s *Service) FetchStats(ctx context.Context, userID int) domain.DashboardStats {
	records, err := s.propertyRepo.ListAggregatesByOwner(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao buscar estatísticas")
		return s.snapshot(userID)
	}

	stats := Aggregate(records)

	s.mu.Lock()
	s.snapshots[userID] = stats
	s.mu.Unlock()

	return stats
}

func (s *Service) PropertyChanged(ctx context.Context, userID int) {
	stats := s.FetchStats(ctx, userID)

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":          userID,
		"user_total":       stats.Total,
		"user_available":   stats.Available,
		"user_total_value": stats.TotalValue,
	}).Debug("Estatísticas do painel atualizadas após alteração de imóvel")
}

func (s *Service) GetDashboard(ctx context.Context, session *domain.Session) *domain.DashboardResponse {
	stats := s.FetchStats(ctx, session.UserID)
	insights := s.insights.Get(stats)

	email := session.Email
	if email == "" {
		email = s.demoEmail
	}

	return &domain.DashboardResponse{
		UserEmail: email,
		Stats:     stats,
		Insights:  insights,
		Formatted: domain.FormattedMoney{
			TotalValue:       currency.FormatBRL(stats.TotalValue),
			ProjectedRevenue: currency.FormatBRL(float64(insights.ProjectedRevenue)),
			AverageTicket:    currency.FormatBRL(float64(insights.AverageTicket)),
		},
	}
}

func (s *Service) TrackedOwners() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owners := make([]int, 0, len(s.snapshots))
	for userID := range s.snapshots {
		owners = append(owners, userID)
	}
	sort.Ints(owners)

	return owners
}

func (s *Service) snapshot(userID int) domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots[userID]
}
