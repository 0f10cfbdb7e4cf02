package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/deal-status-api/internal/api/handler/router"
	"github.com/vfg2006/deal-status-api/internal/config"
	"github.com/vfg2006/deal-status-api/internal/scheduler"
	"github.com/vfg2006/deal-status-api/internal/usecases/dealstatus"
	"github.com/vfg2006/deal-status-api/pkg/middleware"
)

func Healthcheck(tokenCheck *scheduler.TokenCheckService) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(tokenCheck),
		},
	}
}

// DealStatus registra o endpoint no caminho original e no versionado.
// O Cache-Control só é enviado na variante completa.
func DealStatus(service dealstatus.DealStatusService, cfg config.DealStatus) []router.Route {
	var middlewares []alice.Constructor
	if cfg.IncludeOwner() {
		middlewares = append(middlewares, middleware.CacheControl(cfg.CacheControl))
	}

	handler := GetDealStatus(service)

	return []router.Route{
		{
			Path:        "/api/deal-status",
			Method:      http.MethodGet,
			Handler:     handler,
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/deal-status",
			Method:      http.MethodGet,
			Handler:     handler,
			Middlewares: middlewares,
		},
	}
}

// CronJobs só expõe o disparo manual quando a verificação está habilitada,
// pois a rota não tem autenticação e cada chamada consome o limite do HubSpot.
func CronJobs(services CronJobServices) []router.Route {
	routes := []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}

	if services.TokenCheckService == nil || !services.TokenCheckService.Enabled() {
		return routes
	}

	return append(routes, router.Route{
		Path:    "/v1/cron/:type/run",
		Method:  http.MethodPost,
		Handler: RunCronJob(services),
	})
}
