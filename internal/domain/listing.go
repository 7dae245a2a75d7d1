package domain

type ListingFacts struct {
	Area          string `json:"area"`
	Bedrooms      string `json:"bedrooms"`
	ParkingSpaces string `json:"parking_spaces"`
}

// ListingCard é a projeção de um imóvel pronta para exibição em grades e carrosséis
type ListingCard struct {
	ID              string       `json:"id"`
	Code            string       `json:"codigo,omitempty"`
	Title           string       `json:"title"`
	PropertyType    string       `json:"property_type"`
	TransactionType string       `json:"transaction_type,omitempty"`
	Region          string       `json:"region"`
	Location        string       `json:"location"`
	City            string       `json:"city"`
	Price           float64      `json:"price"`
	PriceFormatted  string       `json:"price_formatted"`
	Area            *float64     `json:"area,omitempty"`
	Bedrooms        *int         `json:"bedrooms,omitempty"`
	Bathrooms       *int         `json:"bathrooms,omitempty"`
	ParkingSpaces   *int         `json:"parking_spaces,omitempty"`
	Facts           ListingFacts `json:"facts"`
	ImageURL        string       `json:"image_url"`
	Link            string       `json:"link"`
	IsLaunch        bool         `json:"is_launch"`
}

type LaunchesResponse struct {
	Query    string        `json:"query"`
	Count    int           `json:"count"`
	Summary  string        `json:"summary"`
	Launches []ListingCard `json:"launches"`
}

type CarouselResponse struct {
	Start       int           `json:"start"`
	WindowSize  int           `json:"window_size"`
	Total       int           `json:"total"`
	HasPrevious bool          `json:"has_previous"`
	HasNext     bool          `json:"has_next"`
	Items       []ListingCard `json:"items"`
}
