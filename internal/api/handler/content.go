package handler

import (
	"net/http"

	"github.com/imobiflow/imobiflow-api/internal/content"
)

func GetPrivacyPolicy(service content.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.PrivacyPolicy())
	}
}
