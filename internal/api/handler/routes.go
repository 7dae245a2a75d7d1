package handler

import (
	"net/http"

	"github.com/imobiflow/imobiflow-api/internal/api/handler/router"
	"github.com/imobiflow/imobiflow-api/internal/content"
	"github.com/imobiflow/imobiflow-api/internal/usecases/authenticating"
	"github.com/imobiflow/imobiflow-api/internal/usecases/dashboard"
	"github.com/imobiflow/imobiflow-api/internal/usecases/listing"
	"github.com/imobiflow/imobiflow-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
	}
}

func Dashboard(service dashboard.Dashboarder, contentService content.Provider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
		{
			Path:        "/v1/dashboard/content",
			Method:      http.MethodGet,
			Handler:     GetDashboardContent(contentService),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
	}
}

func Properties(service listing.Lister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/properties",
			Method:      http.MethodGet,
			Handler:     ListMyProperties(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
		{
			Path:        "/v1/properties",
			Method:      http.MethodPost,
			Handler:     CreateProperty(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
		{
			Path:        "/v1/properties/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProperty(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
		{
			Path:    "/v1/properties/:id",
			Method:  http.MethodGet,
			Handler: GetProperty(service),
		},
		{
			Path:    "/v1/properties/:id/similar",
			Method:  http.MethodGet,
			Handler: GetSimilarProperties(service),
		},
		{
			Path:    "/v1/launches",
			Method:  http.MethodGet,
			Handler: ListLaunches(service),
		},
	}
}

func Content(service content.Provider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/content/privacy-policy",
			Method:  http.MethodGet,
			Handler: GetPrivacyPolicy(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
