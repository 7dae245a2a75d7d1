package listing

import (
	"fmt"
	"strconv"

	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/pkg/currency"
)

const (
	defaultRegion = "Região"
	missingFact   = "-"
)

// ToCard projeta o imóvel no formato exibido pelas grades e pelo carrossel
func ToCard(property *domain.Property, placeholder string) domain.ListingCard {
	var price float64
	if property.Price != nil {
		price = *property.Price
	}

	return domain.ListingCard{
		ID:              property.ID,
		Code:            property.Code,
		Title:           property.Title,
		PropertyType:    property.PropertyType,
		TransactionType: property.TransactionType,
		Region:          region(property),
		Location:        property.Location,
		City:            property.City,
		Price:           price,
		PriceFormatted:  currency.FormatBRL(price),
		Area:            property.Area,
		Bedrooms:        property.Bedrooms,
		Bathrooms:       property.Bathrooms,
		ParkingSpaces:   property.ParkingSpaces,
		Facts: domain.ListingFacts{
			Area:          areaFact(property.Area),
			Bedrooms:      countFact(property.Bedrooms, "Quartos"),
			ParkingSpaces: countFact(property.ParkingSpaces, "Vagas"),
		},
		ImageURL: ResolveImage(property, placeholder),
		Link:     Link(property),
		IsLaunch: property.IsLaunch,
	}
}

func ToCards(properties []*domain.Property, placeholder string) []domain.ListingCard {
	cards := make([]domain.ListingCard, 0, len(properties))
	for _, property := range properties {
		cards = append(cards, ToCard(property, placeholder))
	}
	return cards
}

// Link prefere o código público ao UUID
func Link(property *domain.Property) string {
	if property.Code != "" {
		return "/property/" + property.Code
	}
	return "/property/" + property.ID
}

func region(property *domain.Property) string {
	switch {
	case property.Neighborhood != "":
		return property.Neighborhood
	case property.Location != "":
		return property.Location
	default:
		return defaultRegion
	}
}

func areaFact(area *float64) string {
	if area == nil || *area == 0 {
		return missingFact
	}
	return strconv.FormatFloat(*area, 'f', -1, 64) + "m²"
}

func countFact(value *int, label string) string {
	if value == nil || *value == 0 {
		return missingFact
	}
	return fmt.Sprintf("%d %s", *value, label)
}
