// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/imobiflow/imobiflow-api/infrastructure/database/postgres"
	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/lib/pq"
)

const (
	propertiesTable     = "properties p"
	propertyImagesTable = "property_images"
)

var propertyColumns = []string{
	"p.id",
	"COALESCE(p.codigo, '')",
	"p.user_id",
	"p.title",
	"COALESCE(p.description, '')",
	"p.property_type",
	"COALESCE(p.transaction_type, '')",
	"p.status",
	"p.price",
	"COALESCE(p.location, '')",
	"COALESCE(p.neighborhood, '')",
	"p.city",
	"p.area",
	"p.bedrooms",
	"p.bathrooms",
	"p.parking_spaces",
	"p.is_launch",
	"p.images",
	"p.created_at",
	"p.updated_at",
}

//go:generate mockgen -source=property.go -destination=mocks/property.go -package=mocks
type PropertyRepository interface {
	ListAggregatesByOwner(ctx context.Context, userID int) ([]domain.PropertyAggregate, error)
	ListLaunches(ctx context.Context) ([]*domain.Property, error)
	ListByOwner(ctx context.Context, userID int) ([]*domain.Property, error)
	ListSimilar(ctx context.Context, filter domain.SimilarFilter) ([]*domain.Property, error)
	GetByIDOrCode(ctx context.Context, idOrCode string) (*domain.Property, error)
	Create(ctx context.Context, property *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
}

type propertyRepository struct {
	conn postgres.Conn
}

func NewPropertyRepository(conn postgres.Conn) PropertyRepository {
	return &propertyRepository{
		conn: conn,
	}
}

func aggregatesByOwnerQuery(userID int) squirrel.SelectBuilder {
	return squirrel.
		Select("p.status", "p.price").
		From(propertiesTable).
		Where(squirrel.Eq{"p.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)
}

func launchesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(propertyColumns...).
		From(propertiesTable).
		Where(squirrel.Eq{"p.status": domain.PropertyStatusAvailable}).
		Where(squirrel.Eq{"p.is_launch": true}).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func similarQuery(filter domain.SimilarFilter) squirrel.SelectBuilder {
	query := squirrel.
		Select(propertyColumns...).
		From(propertiesTable).
		Where(squirrel.Eq{"p.status": domain.PropertyStatusAvailable}).
		Where(squirrel.NotEq{"p.id": filter.ExcludeID}).
		Where(squirrel.Or{
			squirrel.Eq{"p.city": filter.City},
			squirrel.Eq{"p.property_type": filter.PropertyType},
		}).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	return query
}

// ListAggregatesByOwner busca apenas status e preço dos imóveis do usuário
func (r *propertyRepository) ListAggregatesByOwner(ctx context.Context, userID int) ([]domain.PropertyAggregate, error) {
	sqlQuery, args, err := aggregatesByOwnerQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	aggregates := make([]domain.PropertyAggregate, 0)
	for rows.Next() {
		var aggregate domain.PropertyAggregate
		if err := rows.Scan(&aggregate.Status, &aggregate.Price); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado: %w", err)
		}
		aggregates = append(aggregates, aggregate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}

func (r *propertyRepository) ListLaunches(ctx context.Context) ([]*domain.Property, error) {
	return r.listWithImages(ctx, launchesQuery())
}

func (r *propertyRepository) ListByOwner(ctx context.Context, userID int) ([]*domain.Property, error) {
	query := squirrel.
		Select(propertyColumns...).
		From(propertiesTable).
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listWithImages(ctx, query)
}

func (r *propertyRepository) ListSimilar(ctx context.Context, filter domain.SimilarFilter) ([]*domain.Property, error) {
	return r.listWithImages(ctx, similarQuery(filter))
}

// GetByIDOrCode aceita tanto o UUID quanto o código público; retorna nil quando não existe
func (r *propertyRepository) GetByIDOrCode(ctx context.Context, idOrCode string) (*domain.Property, error) {
	query := squirrel.
		Select(propertyColumns...).
		From(propertiesTable).
		Where(squirrel.Or{
			squirrel.Expr("p.id::text = ?", idOrCode),
			squirrel.Eq{"p.codigo": idOrCode},
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	properties, err := r.listWithImages(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(properties) == 0 {
		return nil, nil
	}

	return properties[0], nil
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	sqlQuery, args, err := squirrel.
		Insert("properties").
		Columns(
			"codigo",
			"user_id",
			"title",
			"description",
			"property_type",
			"transaction_type",
			"status",
			"price",
			"location",
			"neighborhood",
			"city",
			"area",
			"bedrooms",
			"bathrooms",
			"parking_spaces",
			"is_launch",
			"images",
		).
		Values(
			property.Code,
			property.UserID,
			property.Title,
			property.Description,
			property.PropertyType,
			property.TransactionType,
			property.Status,
			property.Price,
			property.Location,
			property.Neighborhood,
			property.City,
			property.Area,
			property.Bedrooms,
			property.Bathrooms,
			property.ParkingSpaces,
			property.IsLaunch,
			pq.StringArray(property.Images),
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir imóvel: %w", err)
	}

	return property, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	sqlQuery, args, err := squirrel.
		Update("properties").
		Set("title", property.Title).
		Set("description", property.Description).
		Set("property_type", property.PropertyType).
		Set("transaction_type", property.TransactionType).
		Set("status", property.Status).
		Set("price", property.Price).
		Set("location", property.Location).
		Set("neighborhood", property.Neighborhood).
		Set("city", property.City).
		Set("area", property.Area).
		Set("bedrooms", property.Bedrooms).
		Set("bathrooms", property.Bathrooms).
		Set("parking_spaces", property.ParkingSpaces).
		Set("is_launch", property.IsLaunch).
		Set("images", pq.StringArray(property.Images)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": property.ID, "user_id": property.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar imóvel: %w", err)
	}

	return nil
}

func (r *propertyRepository) listWithImages(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.Property, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear imóvel: %w", err)
		}
		properties = append(properties, property)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if err := r.attachImages(ctx, properties); err != nil {
		return nil, err
	}

	return properties, nil
}

// attachImages carrega property_images de todos os imóveis em uma única consulta
func (r *propertyRepository) attachImages(ctx context.Context, properties []*domain.Property) error {
	if len(properties) == 0 {
		return nil
	}

	ids := make([]string, 0, len(properties))
	byID := make(map[string]*domain.Property, len(properties))
	for _, property := range properties {
		ids = append(ids, property.ID)
		byID[property.ID] = property
	}

	sqlQuery, args, err := squirrel.
		Select("id", "property_id", "image_url", "is_primary", "position").
		From(propertyImagesTable).
		Where(squirrel.Expr("property_id::text = ANY(?)", pq.Array(ids))).
		OrderBy("property_id", "position ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de imagens: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar imagens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var image domain.PropertyImage
		if err := rows.Scan(&image.ID, &image.PropertyID, &image.ImageURL, &image.IsPrimary, &image.Position); err != nil {
			return fmt.Errorf("erro ao escanear imagem: %w", err)
		}
		if property, ok := byID[image.PropertyID]; ok {
			property.PropertyImages = append(property.PropertyImages, image)
		}
	}

	return rows.Err()
}

func scanProperty(rows *sql.Rows) (*domain.Property, error) {
	property := &domain.Property{}

	var (
		price         sql.NullFloat64
		area          sql.NullFloat64
		bedrooms      sql.NullInt64
		bathrooms     sql.NullInt64
		parkingSpaces sql.NullInt64
		images        pq.StringArray
	)

	err := rows.Scan(
		&property.ID,
		&property.Code,
		&property.UserID,
		&property.Title,
		&property.Description,
		&property.PropertyType,
		&property.TransactionType,
		&property.Status,
		&price,
		&property.Location,
		&property.Neighborhood,
		&property.City,
		&area,
		&bedrooms,
		&bathrooms,
		&parkingSpaces,
		&property.IsLaunch,
		&images,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	property.Price = nullFloat(price)
	property.Area = nullFloat(area)
	property.Bedrooms = nullInt(bedrooms)
	property.Bathrooms = nullInt(bathrooms)
	property.ParkingSpaces = nullInt(parkingSpaces)
	property.Images = []string(images)
	property.PropertyImages = []domain.PropertyImage{}

	return property, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
