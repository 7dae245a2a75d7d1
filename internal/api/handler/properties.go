package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/imobiflow/imobiflow-api/internal/usecases/listing"
	"github.com/imobiflow/imobiflow-api/pkg/apiErrors"
	"github.com/imobiflow/imobiflow-api/pkg/middleware"
)

func ListMyProperties(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		properties, err := service.ListMine(r.Context(), session)
		if err != nil {
			handleListingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, properties)
	}
}

func CreateProperty(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		var input domain.PropertyInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		property, err := service.Create(r.Context(), session, &input)
		if err != nil {
			handleListingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, property)
	}
}

func UpdateProperty(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.PropertyInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		property, err := service.Update(r.Context(), session, id, &input)
		if err != nil {
			handleListingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, property)
	}
}

// GetProperty aceita o UUID ou o código público do imóvel
func GetProperty(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		property, err := service.Get(r.Context(), id)
		if err != nil {
			handleListingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, property)
	}
}

// GetSimilarProperties devolve a janela do carrossel; start ausente equivale a 0
func GetSimilarProperties(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		start := 0
		if raw := r.URL.Query().Get("start"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start deve ser um número inteiro", nil)
				return
			}
			start = parsed
		}

		carousel, err := service.Similar(r.Context(), id, start)
		if err != nil {
			handleListingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, carousel)
	}
}

func ListLaunches(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListLaunches(r.Context(), r.URL.Query().Get("q")))
	}
}
