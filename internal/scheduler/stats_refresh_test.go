package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/internal/usecases/dashboard/mocks"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newRefreshService(t *testing.T, enabled bool) (*StatsRefreshService, *mocks.MockDashboarder) {
	ctrl := gomock.NewController(t)
	dashboardMock := mocks.NewMockDashboarder(ctrl)
	cfg := &config.Config{StatsRefresh: config.StatsRefresh{CronSchedule: "*/15 * * * *", Enabled: enabled}}

	return NewStatsRefreshService(dashboardMock, cfg), dashboardMock
}

func TestStatsRefreshService_RefreshAll(t *testing.T) {
	svc, dashboardMock := newRefreshService(t, true)

	dashboardMock.EXPECT().TrackedOwners().Return([]int{1, 2, 3})
	for _, userID := range []int{1, 2, 3} {
		dashboardMock.EXPECT().FetchStats(gomock.Any(), userID).Return(domain.DashboardStats{Total: userID})
	}

	svc.RefreshAll()

	status := svc.GetStatus()
	assert.Equal(t, 3, status["last_refresh_owners"])
	assert.Equal(t, false, status["running"])
	assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
}

func TestStatsRefreshService_RefreshAll_NoOwners(t *testing.T) {
	svc, dashboardMock := newRefreshService(t, true)

	dashboardMock.EXPECT().TrackedOwners().Return(nil)

	svc.RefreshAll()

	assert.Equal(t, 0, svc.GetStatus()["last_refresh_owners"])
}

func TestStatsRefreshService_SkipsWhenRunning(t *testing.T) {
	svc, _ := newRefreshService(t, true)

	// nenhuma chamada ao painel é esperada enquanto outra execução está ativa
	svc.running = true
	svc.RefreshAll()
	svc.TriggerManualSync()

	assert.True(t, svc.IsRunning())
}

func TestStatsRefreshService_TriggerManualSync(t *testing.T) {
	svc, dashboardMock := newRefreshService(t, true)
	done := make(chan struct{})

	dashboardMock.EXPECT().TrackedOwners().Return([]int{7})
	dashboardMock.EXPECT().FetchStats(gomock.Any(), 7).DoAndReturn(func(context.Context, int) domain.DashboardStats {
		close(done)
		return domain.DashboardStats{}
	})

	svc.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("atualização manual não executou")
	}

	require.Eventually(t, func() bool { return !svc.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestStatsRefreshService_StartDisabled(t *testing.T) {
	svc, _ := newRefreshService(t, false)

	assert.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, false, svc.GetStatus()["enabled"])
}

func TestStatsRefreshService_StartInvalidCron(t *testing.T) {
	svc, _ := newRefreshService(t, true)
	svc.config.CronSchedule = "não é cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, svc.Start(ctx))
}
