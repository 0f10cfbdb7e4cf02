package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/deal-status-api/internal/domain"
	"github.com/vfg2006/deal-status-api/internal/scheduler"
)

// HealthcheckHandler inclui o último resultado da verificação do token quando ela está ativa
func HealthcheckHandler(tokenCheck *scheduler.TokenCheckService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := domain.HealthcheckResponse{
			Time: time.Now().UTC().Format(time.RFC3339),
		}

		if tokenCheck != nil {
			if status := tokenCheck.Status(); status.Enabled {
				resp.CRM = &status
			}
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
