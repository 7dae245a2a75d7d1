package listing

import (
	"context"
	"strings"

	"github.com/imobiflow/imobiflow-api/infrastructure/repository"
	"github.com/imobiflow/imobiflow-api/internal/config"
	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/pkg/apiErrors"
	"github.com/imobiflow/imobiflow-api/pkg/log"
	"github.com/imobiflow/imobiflow-api/pkg/utils"
)

const defaultSimilarLimit = 12

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// MutationListener é avisado sempre que um imóvel do usuário é criado ou alterado
type MutationListener interface {
	PropertyChanged(ctx context.Context, userID int)
}

type Lister interface {
	ListLaunches(ctx context.Context, term string) *domain.LaunchesResponse
	Similar(ctx context.Context, idOrCode string, start int) (*domain.CarouselResponse, error)
	Get(ctx context.Context, idOrCode string) (*domain.Property, error)
	ListMine(ctx context.Context, session *domain.Session) ([]*domain.Property, error)
	Create(ctx context.Context, session *domain.Session, input *domain.PropertyInput) (*domain.Property, error)
	Update(ctx context.Context, session *domain.Session, id string, input *domain.PropertyInput) (*domain.Property, error)
}

type Service struct {
	propertyRepo repository.PropertyRepository
	listener     MutationListener
	similarLimit int
	placeholder  string
}

func NewService(propertyRepo repository.PropertyRepository, listener MutationListener, cfg *config.Config) Lister {
	similarLimit := cfg.Listing.SimilarLimit
	if similarLimit <= 0 {
		similarLimit = defaultSimilarLimit
	}

	placeholder := cfg.Listing.PlaceholderImage
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}

	return &Service{
		propertyRepo: propertyRepo,
		listener:     listener,
		similarLimit: similarLimit,
		placeholder:  placeholder,
	}
}

// ListLaunches busca os lançamentos disponíveis e aplica o filtro de busca.
// Falha no banco vira lista vazia.
func (s *Service) ListLaunches(ctx context.Context, term string) *domain.LaunchesResponse {
	launches, err := s.propertyRepo.ListLaunches(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar lançamentos")
		launches = []*domain.Property{}
	}

	filtered := FilterLaunches(launches, term)

	return &domain.LaunchesResponse{
		Query:    strings.TrimSpace(term),
		Count:    len(filtered),
		Summary:  LaunchSummary(len(filtered)),
		Launches: ToCards(filtered, s.placeholder),
	}
}

func (s *Service) Get(ctx context.Context, idOrCode string) (*domain.Property, error) {
	idOrCode = strings.TrimSpace(idOrCode)
	if idOrCode == "" {
		return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Identificador do imóvel é obrigatório")
	}

	property, err := s.propertyRepo.GetByIDOrCode(ctx, idOrCode)
	if err != nil {
		return nil, NewPropertyError(err, apiErrors.ErrDatabaseOperation, idOrCode, "Erro ao buscar imóvel")
	}

	if property == nil {
		return nil, NewPropertyError(ErrPropertyNotFound, apiErrors.ErrPropertyNotFound, idOrCode, "")
	}

	return property, nil
}

// Similar devolve a janela do carrossel de imóveis semelhantes começando em start
func (s *Service) Similar(ctx context.Context, idOrCode string, start int) (*domain.CarouselResponse, error) {
	property, err := s.Get(ctx, idOrCode)
	if err != nil {
		return nil, err
	}

	similar, err := s.propertyRepo.ListSimilar(ctx, domain.SimilarFilter{
		ExcludeID:    property.ID,
		City:         property.City,
		PropertyType: property.PropertyType,
		Limit:        s.similarLimit,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("property_id", property.ID).Error("Erro ao carregar imóveis semelhantes")
		similar = []*domain.Property{}
	}

	return NewCarouselAt(ToCards(similar, s.placeholder), start).Response(), nil
}

func (s *Service) ListMine(ctx context.Context, session *domain.Session) ([]*domain.Property, error) {
	if session == nil {
		return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrInvalidToken, "Sessão obrigatória")
	}

	properties, err := s.propertyRepo.ListByOwner(ctx, session.UserID)
	if err != nil {
		return nil, NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar imóveis do usuário")
	}

	return properties, nil
}

func (s *Service) Create(ctx context.Context, session *domain.Session, input *domain.PropertyInput) (*domain.Property, error) {
	if session == nil {
		return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrInvalidToken, "Sessão obrigatória")
	}

	if input == nil {
		return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	property := &domain.Property{
		UserID: session.UserID,
		Status: domain.PropertyStatusAvailable,
		Images: []string{},
	}
	applyInput(property, input)

	if err := validateProperty(property); err != nil {
		return nil, err
	}

	code, err := utils.GenerateCode()
	if err != nil {
		return nil, NewListingError(err, apiErrors.ErrInternalServer, "Erro ao gerar código do imóvel")
	}
	property.Code = code

	created, err := s.propertyRepo.Create(ctx, property)
	if err != nil {
		return nil, NewListingError(err, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar imóvel")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":       session.UserID,
		"property_id":   created.ID,
		"property_code": created.Code,
	}).Info("Imóvel cadastrado")

	s.notify(ctx, session.UserID)

	return created, nil
}

// Update aplica apenas os campos informados. Imóveis de outros usuários são tratados como inexistentes.
func (s *Service) Update(ctx context.Context, session *domain.Session, id string, input *domain.PropertyInput) (*domain.Property, error) {
	if session == nil {
		return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrInvalidToken, "Sessão obrigatória")
	}

	if input == nil {
		return nil, NewListingError(ErrMissingRequiredData, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	property, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if property.UserID != session.UserID {
		return nil, NewPropertyError(ErrPropertyNotFound, apiErrors.ErrPropertyNotFound, id, "")
	}

	applyInput(property, input)

	if err := validateProperty(property); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, NewPropertyError(err, apiErrors.ErrDatabaseOperation, property.ID, "Erro ao atualizar imóvel")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":     session.UserID,
		"property_id": property.ID,
	}).Info("Imóvel atualizado")

	s.notify(ctx, session.UserID)

	return property, nil
}

func (s *Service) notify(ctx context.Context, userID int) {
	if s.listener != nil {
		s.listener.PropertyChanged(ctx, userID)
	}
}

func applyInput(property *domain.Property, input *domain.PropertyInput) {
	if input.Title != nil {
		property.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.PropertyType != nil {
		property.PropertyType = strings.TrimSpace(*input.PropertyType)
	}
	if input.TransactionType != nil {
		property.TransactionType = *input.TransactionType
	}
	if input.Status != nil {
		property.Status = *input.Status
	}
	if input.Price != nil {
		property.Price = input.Price
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.Neighborhood != nil {
		property.Neighborhood = *input.Neighborhood
	}
	if input.City != nil {
		property.City = strings.TrimSpace(*input.City)
	}
	if input.Area != nil {
		property.Area = input.Area
	}
	if input.Bedrooms != nil {
		property.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = input.Bathrooms
	}
	if input.ParkingSpaces != nil {
		property.ParkingSpaces = input.ParkingSpaces
	}
	if input.IsLaunch != nil {
		property.IsLaunch = *input.IsLaunch
	}
	if input.Images != nil {
		property.Images = input.Images
	}
}

func validateProperty(property *domain.Property) error {
	if property.Title == "" || property.PropertyType == "" || property.City == "" {
		return NewListingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Título, tipo e cidade são obrigatórios")
	}

	if property.Price != nil && *property.Price < 0 {
		return NewListingError(ErrInvalidPrice, apiErrors.ErrInvalidFormat, "O preço não pode ser negativo")
	}

	if !property.Status.IsValid() {
		return NewListingError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, string(property.Status))
	}

	return nil
}
