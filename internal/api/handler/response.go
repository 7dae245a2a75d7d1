package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/imobiflow/imobiflow-api/internal/usecases/authenticating"
	"github.com/imobiflow/imobiflow-api/internal/usecases/listing"
	"github.com/imobiflow/imobiflow-api/pkg/apiErrors"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleAuthError converte erros do serviço de autenticação na resposta padronizada
func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("Erro no serviço de autenticação")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado na autenticação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar autenticação", nil)
}

// handleListingError converte erros do serviço de imóveis na resposta padronizada
func handleListingError(w http.ResponseWriter, r *http.Request, err error) {
	var listingErr *listing.ListingError
	if errors.As(err, &listingErr) {
		if apiErrors.StatusFor(listingErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("Erro no serviço de imóveis")
		}

		var details any
		if listingErr.PropertyID != "" {
			details = map[string]any{"property_id": listingErr.PropertyID}
		}
		apiErrors.WriteError(w, listingErr.Code, listingErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no serviço de imóveis")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar imóvel", nil)
}
