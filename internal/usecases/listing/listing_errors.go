package listing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de imóveis
var (
	ErrPropertyNotFound    = errors.New("imóvel não encontrado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidPrice        = errors.New("preço inválido")
	ErrInvalidStatus       = errors.New("status inválido")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// ListingError carrega o código de API junto do erro base
type ListingError struct {
	Err        error
	Code       string
	PropertyID string
	Details    string
}

func (e *ListingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

func NewListingError(err error, code string, details string) *ListingError {
	return &ListingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewPropertyError cria um ListingError associado a um imóvel
func NewPropertyError(err error, code string, propertyID string, details string) *ListingError {
	return &ListingError{
		Err:        err,
		Code:       code,
		PropertyID: propertyID,
		Details:    details,
	}
}
