package handler

import (
	"net/http"

	"github.com/imobiflow/imobiflow-api/internal/content"
	"github.com/imobiflow/imobiflow-api/internal/usecases/dashboard"
	"github.com/imobiflow/imobiflow-api/pkg/apiErrors"
	"github.com/imobiflow/imobiflow-api/pkg/middleware"
)

// GetDashboard devolve estatísticas, indicadores e valores formatados do usuário logado
func GetDashboard(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.GetDashboard(r.Context(), session))
	}
}

func GetDashboardContent(service content.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Dashboard())
	}
}
