package listing

import (
	"fmt"
	"strings"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

// FilterLaunches mantém os imóveis cujo título, localização ou cidade contém o termo.
// O termo é normalizado com trim e minúsculas; termo vazio devolve a lista inteira.
func FilterLaunches(items []*domain.Property, term string) []*domain.Property {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	filtered := make([]*domain.Property, 0, len(items))
	for _, property := range items {
		if strings.Contains(strings.ToLower(property.Title), term) ||
			strings.Contains(strings.ToLower(property.Location), term) ||
			strings.Contains(strings.ToLower(property.City), term) {
			filtered = append(filtered, property)
		}
	}

	return filtered
}

func LaunchSummary(count int) string {
	if count == 1 {
		return "1 lançamento encontrado"
	}
	return fmt.Sprintf("%d lançamentos encontrados", count)
}
