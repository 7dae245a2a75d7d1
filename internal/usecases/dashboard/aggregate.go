package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

// Aggregate reduz os registros de status e preço às contagens do painel.
// Preço nulo soma zero; status fora de available/sold/rented conta apenas no total.
func Aggregate(records []domain.PropertyAggregate) domain.DashboardStats {
	stats := domain.DashboardStats{Total: len(records)}
	totalValue := decimal.Zero

	for _, record := range records {
		switch record.Status {
		case domain.PropertyStatusAvailable:
			stats.Available++
		case domain.PropertyStatusSold:
			stats.Sold++
		case domain.PropertyStatusRented:
			stats.Rented++
		}

		if record.Price.Valid {
			totalValue = totalValue.Add(record.Price.Decimal)
		}
	}

	stats.TotalValue = totalValue.InexactFloat64()
	return stats
}
