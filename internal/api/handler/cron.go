package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/imobiflow/imobiflow-api/pkg/apiErrors"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeStats = "stats"
	CronJobTypeAll   = "all"
)

//go:generate mockgen -source=cron.go -destination=mocks/cron.go -package=mocks
type StatsRefresher interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	StatsRefreshService StatsRefresher
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeStats, CronJobTypeAll:
			if services.StatsRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de estatísticas não disponível", nil)
				return
			}
			services.StatsRefreshService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: stats, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.StatsRefreshService != nil {
			status[CronJobTypeStats] = services.StatsRefreshService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
