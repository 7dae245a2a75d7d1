package dashboard

import (
	"math"
	"sort"

	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/pkg/utils"
)

// brokerRule descreve um corretor do ranking fixo: deals = max(floor, round(closings*weight)+bonus)
type brokerRule struct {
	name   string
	weight float64
	bonus  int
	floor  int
}

var brokerRoster = []brokerRule{
	{name: "Fernanda Lima", weight: 0.4, bonus: 2, floor: 4},
	{name: "Rafael Costa", weight: 0.34, bonus: 1, floor: 3},
	{name: "Juliana Alves", weight: 0.26, bonus: 1, floor: 2},
}

// DeriveInsights calcula os indicadores comerciais a partir das contagens do painel.
// Os denominadores nunca são menores que 1.
func DeriveInsights(stats domain.DashboardStats) domain.Insights {
	available := float64(stats.Available)
	total := float64(stats.Total)
	denominatorTotal := math.Max(1, total)

	closedDeals := stats.Sold + stats.Rented
	newLeads := max(18, stats.Available*4+closedDeals*2)
	visits := max(8, utils.Round(float64(newLeads)*0.42))
	proposals := max(3, utils.Round(float64(visits)*0.46))

	closings := closedDeals
	if closings == 0 {
		closings = utils.Round(float64(proposals) * 0.35)
	}
	closings = max(1, closings)

	pipeline := clamp(utils.Round(float64(closings)/math.Max(1, float64(proposals))*100), 28, 92)
	responseMinutes := max(6, 18-min(10, stats.Available/2))
	projectedRevenue := utils.RoundHalfUp(stats.TotalValue * (1 + float64(pipeline)/220))
	automationScore := min(96, 52+utils.Round(available/denominatorTotal*28)+min(12, closedDeals*2))
	conversionRate := clamp(utils.Round(float64(closings)/math.Max(1, float64(newLeads))*100), 18, 89)
	averageTicket := utils.RoundHalfUp(stats.TotalValue / denominatorTotal)
	inventoryHealth := clamp(utils.Round(available/denominatorTotal*100+34), 45, 98)
	siteScore := clamp(58+utils.Round(total/math.Max(1, total+5)*32), 62, 97)

	return domain.Insights{
		ClosedDeals:      closedDeals,
		NewLeads:         newLeads,
		Visits:           visits,
		Proposals:        proposals,
		Closings:         closings,
		Pipeline:         pipeline,
		ResponseMinutes:  responseMinutes,
		ProjectedRevenue: projectedRevenue,
		AutomationScore:  automationScore,
		ConversionRate:   conversionRate,
		AverageTicket:    averageTicket,
		InventoryHealth:  inventoryHealth,
		SiteScore:        siteScore,
		BestBroker:       bestBroker(closings),
	}
}

// bestBroker ordena o ranking de forma estável, então empates ficam com o primeiro da lista
func bestBroker(closings int) domain.Broker {
	brokers := make([]domain.Broker, 0, len(brokerRoster))
	for _, rule := range brokerRoster {
		brokers = append(brokers, domain.Broker{
			Name:  rule.name,
			Deals: max(rule.floor, utils.Round(float64(closings)*rule.weight)+rule.bonus),
		})
	}

	sort.SliceStable(brokers, func(i, j int) bool {
		return brokers[i].Deals > brokers[j].Deals
	})

	return brokers[0]
}

func clamp(value, lower, upper int) int {
	return min(upper, max(lower, value))
}
