package dashboard

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

func TestDeriveInsights(t *testing.T) {
	tests := []struct {
		name  string
		stats domain.DashboardStats
		want  domain.Insights
	}{
		{
			name:  "estoque vazio usa pisos e limites inferiores",
			stats: domain.DashboardStats{},
			want: domain.Insights{
				ClosedDeals:      0,
				NewLeads:         18,
				Visits:           8,
				Proposals:        4,
				Closings:         1,
				Pipeline:         28,
				ResponseMinutes:  18,
				ProjectedRevenue: 0,
				AutomationScore:  52,
				ConversionRate:   18,
				AverageTicket:    0,
				InventoryHealth:  45,
				SiteScore:        62,
				BestBroker:       domain.Broker{Name: "Fernanda Lima", Deals: 4},
			},
		},
		{
			name:  "carteira mista",
			stats: domain.DashboardStats{Total: 10, Available: 6, Sold: 3, Rented: 1, TotalValue: 5000000},
			want: domain.Insights{
				ClosedDeals:      4,
				NewLeads:         32,
				Visits:           13,
				Proposals:        6,
				Closings:         4,
				Pipeline:         67,
				ResponseMinutes:  15,
				ProjectedRevenue: 6522727,
				AutomationScore:  77,
				ConversionRate:   18,
				AverageTicket:    500000,
				InventoryHealth:  94,
				SiteScore:        79,
				BestBroker:       domain.Broker{Name: "Fernanda Lima", Deals: 4},
			},
		},
		{
			name:  "todo o estoque disponível",
			stats: domain.DashboardStats{Total: 100, Available: 100},
			want: domain.Insights{
				ClosedDeals:      0,
				NewLeads:         400,
				Visits:           168,
				Proposals:        77,
				Closings:         27,
				Pipeline:         35,
				ResponseMinutes:  8,
				ProjectedRevenue: 0,
				AutomationScore:  80,
				ConversionRate:   18,
				AverageTicket:    0,
				InventoryHealth:  98,
				SiteScore:        88,
				BestBroker:       domain.Broker{Name: "Fernanda Lima", Deals: 13},
			},
		},
		{
			name:  "muitos fechamentos atingem o teto do pipeline",
			stats: domain.DashboardStats{Total: 20, Sold: 10, Rented: 10, TotalValue: 2000000},
			want: domain.Insights{
				ClosedDeals:      20,
				NewLeads:         40,
				Visits:           17,
				Proposals:        8,
				Closings:         20,
				Pipeline:         92,
				ResponseMinutes:  18,
				ProjectedRevenue: 2836364,
				AutomationScore:  64,
				ConversionRate:   50,
				AverageTicket:    100000,
				InventoryHealth:  45,
				SiteScore:        84,
				BestBroker:       domain.Broker{Name: "Fernanda Lima", Deals: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveInsights(tt.stats))
		})
	}
}

func randomStats(r *rand.Rand) domain.DashboardStats {
	available := r.Intn(200)
	sold := r.Intn(60)
	rented := r.Intn(60)
	other := r.Intn(30)

	return domain.DashboardStats{
		Total:      available + sold + rented + other,
		Available:  available,
		Sold:       sold,
		Rented:     rented,
		TotalValue: float64(r.Intn(50_000_000)),
	}
}

func TestDeriveInsights_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(20240611))

	for i := 0; i < 5000; i++ {
		stats := randomStats(r)
		insights := DeriveInsights(stats)

		require.GreaterOrEqual(t, insights.NewLeads, 18, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.Visits, 8, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.Proposals, 3, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.Closings, 1, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.ResponseMinutes, 6, "stats=%+v", stats)

		require.GreaterOrEqual(t, insights.Pipeline, 28, "stats=%+v", stats)
		require.LessOrEqual(t, insights.Pipeline, 92, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.ConversionRate, 18, "stats=%+v", stats)
		require.LessOrEqual(t, insights.ConversionRate, 89, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.InventoryHealth, 45, "stats=%+v", stats)
		require.LessOrEqual(t, insights.InventoryHealth, 98, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.SiteScore, 62, "stats=%+v", stats)
		require.LessOrEqual(t, insights.SiteScore, 97, "stats=%+v", stats)
		require.GreaterOrEqual(t, insights.AutomationScore, 52, "stats=%+v", stats)
		require.LessOrEqual(t, insights.AutomationScore, 96, "stats=%+v", stats)
	}
}

// Com total, vendidos e alugados fixos, os índices que dependem apenas da
// fração disponível não podem cair quando available cresce.
func TestDeriveInsights_MonotonicInAvailable(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		base := randomStats(r)
		previous := DeriveInsights(domain.DashboardStats{
			Total:      base.Total,
			Sold:       base.Sold,
			Rented:     base.Rented,
			TotalValue: base.TotalValue,
		})

		for available := 1; available <= base.Total; available++ {
			stats := base
			stats.Available = available
			current := DeriveInsights(stats)

			require.GreaterOrEqual(t, current.InventoryHealth, previous.InventoryHealth, "stats=%+v", stats)
			require.GreaterOrEqual(t, current.AutomationScore, previous.AutomationScore, "stats=%+v", stats)
			require.GreaterOrEqual(t, current.SiteScore, previous.SiteScore, "stats=%+v", stats)

			previous = current
		}
	}
}

func TestDeriveInsights_Deterministic(t *testing.T) {
	stats := domain.DashboardStats{Total: 7, Available: 3, Sold: 2, Rented: 1, TotalValue: 1234567.89}
	assert.Equal(t, DeriveInsights(stats), DeriveInsights(stats))
}

func TestBestBroker_TieKeepsRosterOrder(t *testing.T) {
	// closings=1: Fernanda max(4, 0+2)=4, Rafael max(3, 0+1)=3, Juliana max(2, 0+1)=2
	assert.Equal(t, domain.Broker{Name: "Fernanda Lima", Deals: 4}, bestBroker(1))
	// closings=6: Fernanda round(2.4)+2=4, Rafael round(2.04)+1=3
	assert.Equal(t, domain.Broker{Name: "Fernanda Lima", Deals: 4}, bestBroker(6))
}
