package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

func cards(n int) []domain.ListingCard {
	items := make([]domain.ListingCard, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.ListingCard{ID: fmt.Sprintf("p%d", i)})
	}
	return items
}

func ids(items []domain.ListingCard) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestCarousel_FiveItems(t *testing.T) {
	c := NewCarousel(cards(5))

	assert.Equal(t, []string{"p0", "p1", "p2"}, ids(c.Visible()))
	assert.False(t, c.HasPrevious())
	assert.True(t, c.HasNext())

	c.Next()
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(c.Visible()))

	c.Next()
	assert.Equal(t, []string{"p2", "p3", "p4"}, ids(c.Visible()))
	assert.False(t, c.HasNext())

	// já no fim, não avança nem volta ao começo
	c.Next()
	assert.Equal(t, 2, c.Start())
	assert.Equal(t, []string{"p2", "p3", "p4"}, ids(c.Visible()))

	c.Previous()
	c.Previous()
	c.Previous()
	assert.Equal(t, 0, c.Start())
	assert.False(t, c.HasPrevious())
}

func TestCarousel_FewerItemsThanWindow(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{name: "vazio", count: 0, want: []string{}},
		{name: "um item", count: 1, want: []string{"p0"}},
		{name: "exatamente a janela", count: 3, want: []string{"p0", "p1", "p2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCarousel(cards(tt.count))
			c.Next()

			assert.Equal(t, 0, c.Start())
			assert.Equal(t, tt.want, ids(c.Visible()))
			assert.False(t, c.HasNext())
			assert.False(t, c.HasPrevious())
		})
	}
}

func TestNewCarouselAt_ClampsStart(t *testing.T) {
	tests := []struct {
		name  string
		count int
		start int
		want  int
	}{
		{name: "negativo", count: 5, start: -4, want: 0},
		{name: "dentro do intervalo", count: 5, start: 1, want: 1},
		{name: "além do fim", count: 5, start: 40, want: 2},
		{name: "lista curta", count: 2, start: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCarouselAt(cards(tt.count), tt.start).Start())
		})
	}
}

// Qualquer sequência de movimentos mantém o início no intervalo válido
func TestCarousel_StartAlwaysInRange(t *testing.T) {
	for n := 0; n <= 8; n++ {
		c := NewCarousel(cards(n))
		moves := []bool{true, true, false, true, true, true, true, false, false, false, false, true}

		for _, forward := range moves {
			if forward {
				c.Next()
			} else {
				c.Previous()
			}

			assert.GreaterOrEqual(t, c.Start(), 0)
			assert.LessOrEqual(t, c.Start(), max(0, n-CarouselWindow))
			assert.LessOrEqual(t, len(c.Visible()), CarouselWindow)
		}
	}
}

func TestCarousel_Response(t *testing.T) {
	resp := NewCarouselAt(cards(5), 1).Response()

	assert.Equal(t, 1, resp.Start)
	assert.Equal(t, 3, resp.WindowSize)
	assert.Equal(t, 5, resp.Total)
	assert.True(t, resp.HasPrevious)
	assert.True(t, resp.HasNext)
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(resp.Items))
}
