package dealstatus

import (
	"context"
	"net/http"

	"github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/deal-status-api/internal/config"
	"github.com/vfg2006/deal-status-api/internal/domain"
	"github.com/vfg2006/deal-status-api/pkg/apiErrors"
	"github.com/vfg2006/deal-status-api/pkg/log"
)

type DealStatusService interface {
	GetDealStatus(ctx context.Context, dealID string) (*domain.DealStatus, error)
}

type Service struct {
	crm          hubspot.HubSpotIntegrator
	inlineAssoc  bool
	includeOwner bool
}

func NewService(crm hubspot.HubSpotIntegrator, cfg *config.Config) DealStatusService {
	full := cfg.DealStatus.IncludeOwner()

	return &Service{
		crm:          crm,
		inlineAssoc:  full,
		includeOwner: full,
	}
}

// GetDealStatus lê o negócio, a primeira empresa associada e o responsável por ela.
// Apenas a falha na leitura do negócio é devolvida; as demais viram campos nulos.
func (s *Service) GetDealStatus(ctx context.Context, dealID string) (*domain.DealStatus, error) {
	if dealID == "" {
		return nil, &DealStatusError{
			Err:     ErrDealIDRequired,
			Code:    apiErrors.ErrMissingRequiredData,
			Message: MessageDealIDRequired,
		}
	}

	logger := log.ForContext(ctx).WithField("deal_id", dealID)

	deal, err := s.fetchDeal(ctx, dealID)
	if err != nil {
		logger.WithError(err).Error("dealstatus: API Error while fetching deal")
		return nil, newDealFetchError(dealID, err)
	}

	status := &domain.DealStatus{
		Deal:         deal,
		IncludeOwner: s.includeOwner,
	}

	companyID, ok := deal.FirstCompanyID()
	if !ok {
		return status, nil
	}

	status.Company = s.fetchCompany(ctx, logger, companyID)
	if s.includeOwner {
		status.Owner = s.fetchOwner(ctx, logger, status.Company)
	}

	return status, nil
}

func (s *Service) fetchDeal(ctx context.Context, dealID string) (*domain.Deal, error) {
	deal, err := s.crm.GetDeal(ctx, dealID, s.inlineAssoc)
	if err != nil {
		return nil, err
	}

	if !s.inlineAssoc {
		companyIDs, err := s.crm.GetDealCompanyIDs(ctx, dealID)
		if err != nil {
			return nil, err
		}
		deal.CompanyIDs = companyIDs
	}

	return deal, nil
}

func (s *Service) fetchCompany(ctx context.Context, logger log.Logger, companyID string) *domain.Company {
	company, err := s.crm.GetCompany(ctx, companyID)
	if err != nil {
		logger.WithFields(log.Fields{
			"company_id": companyID,
			"error":      err.Error(),
		}).Warnf("Warning: Found company ID %s but failed to fetch details.", companyID)
		return nil
	}

	return company
}

func (s *Service) fetchOwner(ctx context.Context, logger log.Logger, company *domain.Company) *domain.Owner {
	ownerID := company.OwnerID()
	if ownerID == "" {
		return nil
	}

	owner, err := s.crm.GetOwner(ctx, ownerID)
	if err != nil {
		logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		}).Warnf("Warning: Found owner ID %s but failed to fetch details.", ownerID)
		return nil
	}

	return owner
}

func newDealFetchError(dealID string, err error) *DealStatusError {
	if errorCode(err) == http.StatusNotFound {
		return &DealStatusError{
			Err:     ErrDealNotFound,
			Code:    apiErrors.ErrObjectNotFound,
			DealID:  dealID,
			Message: errorMessage(err),
			Cause:   err,
		}
	}

	return &DealStatusError{
		Err:     ErrDealFetch,
		Code:    apiErrors.ErrInternalServer,
		DealID:  dealID,
		Message: errorMessage(err),
		Cause:   err,
	}
}
