package listing

import "github.com/imobiflow/imobiflow-api/internal/domain"

// CarouselWindow é a quantidade de cards visíveis ao mesmo tempo
const CarouselWindow = 3

// Carousel é uma janela deslizante sobre a lista de imóveis semelhantes.
// O início fica sempre em [0, max(0, len-3)] e não há volta ao começo.
type Carousel struct {
	items []domain.ListingCard
	start int
}

func NewCarousel(items []domain.ListingCard) *Carousel {
	return &Carousel{items: items}
}

// NewCarouselAt posiciona a janela em start, ajustando valores fora do intervalo
func NewCarouselAt(items []domain.ListingCard, start int) *Carousel {
	c := NewCarousel(items)
	c.start = min(c.maxStart(), max(0, start))
	return c
}

func (c *Carousel) maxStart() int {
	return max(0, len(c.items)-CarouselWindow)
}

func (c *Carousel) Start() int {
	return c.start
}

func (c *Carousel) Next() {
	c.start = min(c.maxStart(), c.start+1)
}

func (c *Carousel) Previous() {
	c.start = max(0, c.start-1)
}

func (c *Carousel) Visible() []domain.ListingCard {
	end := min(len(c.items), c.start+CarouselWindow)
	return c.items[c.start:end]
}

func (c *Carousel) HasPrevious() bool {
	return c.start > 0
}

func (c *Carousel) HasNext() bool {
	return c.start < c.maxStart()
}

// Response monta o corpo HTTP da janela atual
func (c *Carousel) Response() *domain.CarouselResponse {
	visible := make([]domain.ListingCard, len(c.Visible()))
	copy(visible, c.Visible())

	return &domain.CarouselResponse{
		Start:       c.start,
		WindowSize:  CarouselWindow,
		Total:       len(c.items),
		HasPrevious: c.HasPrevious(),
		HasNext:     c.HasNext(),
		Items:       visible,
	}
}
