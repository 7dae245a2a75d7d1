// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusInactive  PropertyStatus = "inactive"
)

// IsValid indica se o status pertence ao conjunto aceito pela API
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusRented,
		PropertyStatusReserved, PropertyStatusInactive:
		return true
	}
	return false
}

type Property struct {
	ID              string          `json:"id"`
	Code            string          `json:"codigo"`
	UserID          int             `json:"user_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	PropertyType    string          `json:"property_type"`
	TransactionType string          `json:"transaction_type"`
	Status          PropertyStatus  `json:"status"`
	Price           *float64        `json:"price"`
	Location        string          `json:"location"`
	Neighborhood    string          `json:"neighborhood"`
	City            string          `json:"city"`
	Area            *float64        `json:"area"`
	Bedrooms        *int            `json:"bedrooms"`
	Bathrooms       *int            `json:"bathrooms"`
	ParkingSpaces   *int            `json:"parking_spaces"`
	IsLaunch        bool            `json:"is_launch"`
	Images          []string        `json:"images"`
	PropertyImages  []PropertyImage `json:"property_images"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type PropertyImage struct {
	ID         int    `json:"id"`
	PropertyID string `json:"property_id"`
	ImageURL   string `json:"image_url"`
	IsPrimary  bool   `json:"is_primary"`
	Position   int    `json:"position"`
}

// PropertyAggregate é a projeção mínima usada pelo painel: status e preço.
// Price inválido equivale a um preço nulo na tabela.
type PropertyAggregate struct {
	Status PropertyStatus
	Price  decimal.NullDecimal
}

// PropertyInput é o corpo aceito na criação e na edição de imóveis.
// Campos nulos são ignorados na edição.
type PropertyInput struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	PropertyType    *string         `json:"property_type"`
	TransactionType *string         `json:"transaction_type"`
	Status          *PropertyStatus `json:"status"`
	Price           *float64        `json:"price"`
	Location        *string         `json:"location"`
	Neighborhood    *string         `json:"neighborhood"`
	City            *string         `json:"city"`
	Area            *float64        `json:"area"`
	Bedrooms        *int            `json:"bedrooms"`
	Bathrooms       *int            `json:"bathrooms"`
	ParkingSpaces   *int            `json:"parking_spaces"`
	IsLaunch        *bool           `json:"is_launch"`
	Images          []string        `json:"images"`
}

type SimilarFilter struct {
	ExcludeID    string
	City         string
	PropertyType string
	Limit        int
}
