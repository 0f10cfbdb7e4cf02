package hubspot

import (
	"context"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/deal-status-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// HubSpotIntegrator expõe as leituras do CRM já no formato do domínio.
type HubSpotIntegrator interface {
	// GetDeal lê o negócio; com withCompanies as empresas associadas vêm na mesma chamada.
	GetDeal(ctx context.Context, dealID string, withCompanies bool) (*domain.Deal, error)
	// GetDealCompanyIDs lê as empresas associadas em uma chamada separada.
	GetDealCompanyIDs(ctx context.Context, dealID string) ([]string, error)
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)
	GetOwner(ctx context.Context, ownerID string) (*domain.Owner, error)
	CheckToken(ctx context.Context) error
}

type HubSpotService struct {
	Client hubspotclient.Client
}

func New(client hubspotclient.Client) HubSpotIntegrator {
	return &HubSpotService{
		Client: client,
	}
}

func (s *HubSpotService) GetDeal(ctx context.Context, dealID string, withCompanies bool) (*domain.Deal, error) {
	var associations []string
	if withCompanies {
		associations = []string{hubspotclient.ObjectTypeCompanies}
	}

	resp, err := s.Client.GetDealByID(ctx, dealID, domain.DealProperties, associations)
	if err != nil {
		return nil, err
	}

	deal := &domain.Deal{
		ID:         resp.ID,
		Properties: domain.Properties(resp.Properties),
		CompanyIDs: resp.AssociatedIDs(hubspotclient.ObjectTypeCompanies),
	}

	logrus.WithFields(logrus.Fields{
		"deal_id":   dealID,
		"companies": len(deal.CompanyIDs),
	}).Debug("hubspot: deal retrieved")

	return deal, nil
}

func (s *HubSpotService) GetDealCompanyIDs(ctx context.Context, dealID string) ([]string, error) {
	resp, err := s.Client.GetDealAssociations(ctx, dealID, hubspotclient.ObjectTypeCompanies)
	if err != nil {
		return nil, err
	}

	return resp.IDs(), nil
}

func (s *HubSpotService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	resp, err := s.Client.GetCompanyByID(ctx, companyID, domain.CompanyProperties)
	if err != nil {
		return nil, err
	}

	return &domain.Company{
		ID:         resp.ID,
		Properties: domain.Properties(resp.Properties),
	}, nil
}

func (s *HubSpotService) GetOwner(ctx context.Context, ownerID string) (*domain.Owner, error) {
	resp, err := s.Client.GetOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return factoryOwner(resp), nil
}

func (s *HubSpotService) CheckToken(ctx context.Context) error {
	return s.Client.CheckToken(ctx)
}

func factoryOwner(owner *hubspotdomain.Owner) *domain.Owner {
	if owner == nil {
		return nil
	}

	return &domain.Owner{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Email:     owner.Email,
	}
}
