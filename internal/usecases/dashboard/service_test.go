package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/imobiflow/imobiflow-api/infrastructure/repository/mocks"
	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(t *testing.T) (*Service, *mocks.MockPropertyRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPropertyRepository(ctrl)
	cfg := &config.Config{App: config.App{DemoEmail: "demo@imobiflow.com"}}

	return NewService(repo, cfg), repo
}

func sampleAggregates() []domain.PropertyAggregate {
	return []domain.PropertyAggregate{
		{Status: domain.PropertyStatusAvailable, Price: price("1000000")},
		{Status: domain.PropertyStatusAvailable, Price: price("1500000")},
		{Status: domain.PropertyStatusSold, Price: price("2500000")},
		{Status: domain.PropertyStatusRented, Price: decimal.NullDecimal{}},
	}
}

func TestService_FetchStats(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().ListAggregatesByOwner(ctx, 7).Return(sampleAggregates(), nil)

	stats := svc.FetchStats(ctx, 7)

	assert.Equal(t, domain.DashboardStats{Total: 4, Available: 2, Sold: 1, Rented: 1, TotalValue: 5000000}, stats)
	assert.Equal(t, []int{7}, svc.TrackedOwners())
}

func TestService_FetchStats_KeepsPreviousOnError(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	gomock.InOrder(
		repo.EXPECT().ListAggregatesByOwner(ctx, 7).Return(sampleAggregates(), nil),
		repo.EXPECT().ListAggregatesByOwner(ctx, 7).Return(nil, errors.New("conexão recusada")),
	)

	first := svc.FetchStats(ctx, 7)
	second := svc.FetchStats(ctx, 7)

	assert.Equal(t, first, second)
}

func TestService_FetchStats_ErrorWithoutHistory(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().ListAggregatesByOwner(ctx, 3).Return(nil, errors.New("timeout"))

	assert.Equal(t, domain.DashboardStats{}, svc.FetchStats(ctx, 3))
	assert.Empty(t, svc.TrackedOwners())
}

func TestService_PropertyChanged(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	gomock.InOrder(
		repo.EXPECT().ListAggregatesByOwner(ctx, 9).Return([]domain.PropertyAggregate{}, nil),
		repo.EXPECT().ListAggregatesByOwner(ctx, 9).Return([]domain.PropertyAggregate{
			{Status: domain.PropertyStatusAvailable, Price: price("350000")},
		}, nil),
	)

	assert.Equal(t, domain.DashboardStats{}, svc.FetchStats(ctx, 9))

	svc.PropertyChanged(ctx, 9)

	assert.Equal(t, domain.DashboardStats{Total: 1, Available: 1, TotalValue: 350000}, svc.snapshot(9))
}

func TestService_TrackedOwnersSorted(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().ListAggregatesByOwner(ctx, gomock.Any()).Return([]domain.PropertyAggregate{}, nil).Times(3)

	svc.FetchStats(ctx, 12)
	svc.FetchStats(ctx, 2)
	svc.FetchStats(ctx, 5)

	assert.Equal(t, []int{2, 5, 12}, svc.TrackedOwners())
}

func TestService_GetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("monta estatísticas, indicadores e valores formatados", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().ListAggregatesByOwner(ctx, 1).Return(sampleAggregates(), nil)

		resp := svc.GetDashboard(ctx, &domain.Session{UserID: 1, Email: "ana@imobiflow.com"})

		assert.Equal(t, "ana@imobiflow.com", resp.UserEmail)
		assert.Equal(t, 4, resp.Stats.Total)
		assert.Equal(t, DeriveInsights(resp.Stats), resp.Insights)
		assert.Equal(t, "R$\u00a05.000.000", resp.Formatted.TotalValue)
		assert.Equal(t, "R$\u00a01.250.000", resp.Formatted.AverageTicket)
	})

	t.Run("usa o e-mail de demonstração quando a sessão não tem e-mail", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().ListAggregatesByOwner(ctx, 1).Return([]domain.PropertyAggregate{}, nil)

		resp := svc.GetDashboard(ctx, &domain.Session{UserID: 1})

		assert.Equal(t, "demo@imobiflow.com", resp.UserEmail)
		assert.Equal(t, "R$\u00a00", resp.Formatted.TotalValue)
		assert.Equal(t, "R$\u00a00", resp.Formatted.ProjectedRevenue)
	})
}
