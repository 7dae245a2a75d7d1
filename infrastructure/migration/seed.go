package migration

import (
	"context"
	"fmt"

	"github.com/imobiflow/imobiflow-api/infrastructure/repository"
	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/internal/usecases/authenticating"
	"github.com/imobiflow/imobiflow-api/pkg/log"
	"github.com/imobiflow/imobiflow-api/pkg/utils"
)

// DemoUser identifica a conta de demonstração criada pelo seed
type DemoUser struct {
	Name     string
	Email    string
	Password string
}

type demoProperty struct {
	title         string
	description   string
	propertyType  string
	transaction   string
	status        domain.PropertyStatus
	price         float64
	location      string
	neighborhood  string
	city          string
	area          float64
	bedrooms      int
	bathrooms     int
	parkingSpaces int
	isLaunch      bool
	images        []string
}

var demoProperties = []demoProperty{
	{
		title: "Residencial Jardim das Acácias", description: "Lançamento com lazer completo e varanda gourmet",
		propertyType: "apartamento", transaction: "venda", status: domain.PropertyStatusAvailable,
		price: 689000, location: "Rua das Acácias, 120", neighborhood: "Jardim Botânico", city: "Curitiba",
		area: 82.5, bedrooms: 3, bathrooms: 2, parkingSpaces: 2, isLaunch: true,
		images: []string{"/images/demo/acacias-fachada.jpg", "/images/demo/acacias-sala.jpg"},
	},
	{
		title: "Edifício Horizonte Azul", description: "Studios próximos ao metrô",
		propertyType: "studio", transaction: "venda", status: domain.PropertyStatusAvailable,
		price: 345000, location: "Av. Paulista, 2100", neighborhood: "Bela Vista", city: "São Paulo",
		area: 32, bedrooms: 1, bathrooms: 1, parkingSpaces: 0, isLaunch: true,
	},
	{
		title: "Casa térrea com quintal", description: "Casa ampla em rua tranquila",
		propertyType: "casa", transaction: "venda", status: domain.PropertyStatusAvailable,
		price: 920000, location: "Rua Ipê Roxo, 45", neighborhood: "Santa Felicidade", city: "Curitiba",
		area: 180, bedrooms: 4, bathrooms: 3, parkingSpaces: 3,
		images: []string{"/images/demo/ipe-fachada.jpg"},
	},
	{
		title: "Apartamento mobiliado no Batel", description: "Pronto para morar",
		propertyType: "apartamento", transaction: "aluguel", status: domain.PropertyStatusRented,
		price: 4800, location: "Av. do Batel, 1500", neighborhood: "Batel", city: "Curitiba",
		area: 74, bedrooms: 2, bathrooms: 2, parkingSpaces: 1,
	},
	{
		title: "Cobertura duplex", description: "Vista panorâmica e piscina privativa",
		propertyType: "apartamento", transaction: "venda", status: domain.PropertyStatusSold,
		price: 1850000, location: "Rua Padre Anchieta, 900", neighborhood: "Bigorrilho", city: "Curitiba",
		area: 240, bedrooms: 4, bathrooms: 5, parkingSpaces: 4,
	},
	{
		title: "Sala comercial", description: "Andar alto com vista para o parque",
		propertyType: "comercial", transaction: "venda", status: domain.PropertyStatusReserved,
		price: 410000, location: "Rua XV de Novembro, 300", neighborhood: "Centro", city: "Curitiba",
		area: 45, bathrooms: 1, parkingSpaces: 1,
	},
}

// SeedDemo cria o usuário de demonstração e sua carteira de imóveis.
// Quando o usuário já existe o seed não faz nada.
func SeedDemo(
	ctx context.Context,
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	authenticator authenticating.Authenticator,
	demo DemoUser,
) (int, error) {
	existing, err := userRepo.GetUserByEmail(ctx, demo.Email)
	if err != nil {
		return 0, fmt.Errorf("erro ao consultar usuário de demonstração: %w", err)
	}
	if existing != nil {
		log.L.WithField("user_id", existing.ID).Info("Usuário de demonstração já existe, seed ignorado")
		return 0, nil
	}

	user, err := authenticator.CreateUser(ctx, &domain.User{
		Name:         demo.Name,
		Email:        demo.Email,
		PasswordHash: demo.Password,
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao criar usuário de demonstração: %w", err)
	}

	successCount := 0
	errorCount := 0
	for i, p := range demoProperties {
		code, err := utils.GenerateCode()
		if err != nil {
			return successCount, fmt.Errorf("erro ao gerar código do imóvel: %w", err)
		}

		property := p.toProperty(user.ID, code)
		if _, err := propertyRepo.Create(ctx, property); err != nil {
			log.L.WithError(err).Errorf("ERRO ao inserir imóvel [%d/%d] %s", i+1, len(demoProperties), p.title)
			errorCount++
			continue
		}
		successCount++
	}

	log.L.WithFields(log.Fields{
		"user_id":         user.ID,
		"property_count":  successCount,
		"property_errors": errorCount,
	}).Info("Seed de demonstração concluído")

	return successCount, nil
}

func (p demoProperty) toProperty(userID int, code string) *domain.Property {
	price := p.price
	area := p.area
	bedrooms := p.bedrooms
	bathrooms := p.bathrooms
	parking := p.parkingSpaces

	images := p.images
	if images == nil {
		images = []string{}
	}

	return &domain.Property{
		Code:            code,
		UserID:          userID,
		Title:           p.title,
		Description:     p.description,
		PropertyType:    p.propertyType,
		TransactionType: p.transaction,
		Status:          p.status,
		Price:           &price,
		Location:        p.location,
		Neighborhood:    p.neighborhood,
		City:            p.city,
		Area:            &area,
		Bedrooms:        &bedrooms,
		Bathrooms:       &bathrooms,
		ParkingSpaces:   &parking,
		IsLaunch:        p.isLaunch,
		Images:          images,
	}
}
