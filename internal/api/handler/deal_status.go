package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/deal-status-api/internal/domain"
	"github.com/vfg2006/deal-status-api/internal/usecases/dealstatus"
	"github.com/vfg2006/deal-status-api/pkg/apiErrors"
	"github.com/vfg2006/deal-status-api/pkg/log"
)

// GetDealStatus responde deal, company e (na variante completa) owner de um negócio.
func GetDealStatus(service dealstatus.DealStatusService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := domain.DealStatusRequest{
			DealID: r.URL.Query().Get("dealId"),
		}

		if err := request.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, dealstatus.MessageDealIDRequired)
			return
		}

		status, err := service.GetDealStatus(r.Context(), request.DealID)
		if err != nil {
			var statusErr *dealstatus.DealStatusError
			if errors.As(err, &statusErr) {
				apiErrors.WriteError(w, statusErr.Code, statusErr.Message)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao consultar status do negócio")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, dealstatus.MessageInternalError)
			return
		}

		writeJSON(w, http.StatusOK, status.Response())
	})
}
