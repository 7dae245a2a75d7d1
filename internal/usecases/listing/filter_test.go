package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

func launchFixtures() []*domain.Property {
	return []*domain.Property{
		{ID: "1", Title: "Residencial Aurora", Location: "Centro", City: "Curitiba"},
		{ID: "2", Title: "Bosque Verde", Location: "Ecoville", City: "Curitiba"},
		{ID: "3", Title: "Torre Atlântica", Location: "Orla", City: "Balneário Camboriú"},
	}
}

func propertyIDs(items []*domain.Property) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFilterLaunches(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "termo vazio devolve tudo", term: "", want: []string{"1", "2", "3"}},
		{name: "apenas espaços devolve tudo", term: "   ", want: []string{"1", "2", "3"}},
		{name: "título sem diferenciar caixa", term: "  AURORA ", want: []string{"1"}},
		{name: "localização", term: "ecoville", want: []string{"2"}},
		{name: "cidade", term: "curitiba", want: []string{"1", "2"}},
		{name: "acentuação preservada", term: "atlântica", want: []string{"3"}},
		{name: "sem resultados", term: "bosque aurora", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, propertyIDs(FilterLaunches(launchFixtures(), tt.term)))
		})
	}
}

// O resultado é sempre subconjunto da entrada, na mesma ordem
func TestFilterLaunches_PreservesOrder(t *testing.T) {
	items := launchFixtures()
	for _, term := range []string{"r", "a", "cu", "o"} {
		filtered := FilterLaunches(items, term)

		last := -1
		for _, property := range filtered {
			index := -1
			for i, item := range items {
				if item == property {
					index = i
				}
			}
			assert.Greater(t, index, last, "term=%q", term)
			last = index
		}
	}
}

func TestLaunchSummary(t *testing.T) {
	assert.Equal(t, "0 lançamentos encontrados", LaunchSummary(0))
	assert.Equal(t, "1 lançamento encontrado", LaunchSummary(1))
	assert.Equal(t, "7 lançamentos encontrados", LaunchSummary(7))
}
