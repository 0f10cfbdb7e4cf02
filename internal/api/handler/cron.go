package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/deal-status-api/internal/domain"
	"github.com/vfg2006/deal-status-api/internal/scheduler"
	"github.com/vfg2006/deal-status-api/pkg/apiErrors"
)

const CronJobTypeTokenCheck = "token-check"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	TokenCheckService *scheduler.TokenCheckService
}

type CronStatusResponse struct {
	TokenCheck *domain.TokenCheckStatus `json:"token_check,omitempty"`
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeTokenCheck:
			if services.TokenCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação do token não disponível")
				return
			}
			services.TokenCheckService.TriggerManualCheck()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido: "+cronType)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]string{
			"message": "Cron job iniciada",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o estado das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := CronStatusResponse{}
		if services.TokenCheckService != nil {
			status := services.TokenCheckService.Status()
			resp.TokenCheck = &status
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
