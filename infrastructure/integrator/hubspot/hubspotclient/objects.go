package hubspotclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	hubspotdomain "github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/domain"
)

var ErrEmptyObjectID = errors.New("hubspot: id do objeto é obrigatório")

func (c *HubSpotClient) GetDealByID(ctx context.Context, dealID string, properties []string, associations []string) (*hubspotdomain.Object, error) {
	return c.getObject(ctx, ObjectTypeDeals, dealID, properties, associations)
}

func (c *HubSpotClient) GetCompanyByID(ctx context.Context, companyID string, properties []string) (*hubspotdomain.Object, error) {
	return c.getObject(ctx, ObjectTypeCompanies, companyID, properties, nil)
}

// GetDealAssociations usa a API v4 de associações. Apenas a primeira página é lida.
func (c *HubSpotClient) GetDealAssociations(ctx context.Context, dealID string, toObjectType string) (*hubspotdomain.AssociationsResponse, error) {
	if dealID == "" {
		return nil, ErrEmptyObjectID
	}

	path := "/crm/v4/objects/" + ObjectTypeDeals + "/" + url.PathEscape(dealID) + "/associations/" + url.PathEscape(toObjectType)

	var response hubspotdomain.AssociationsResponse
	if err := c.get(ctx, path, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *HubSpotClient) getObject(ctx context.Context, objectType, objectID string, properties []string, associations []string) (*hubspotdomain.Object, error) {
	if objectID == "" {
		return nil, ErrEmptyObjectID
	}

	query := url.Values{}
	if len(properties) > 0 {
		query.Set("properties", strings.Join(properties, ","))
	}
	if len(associations) > 0 {
		query.Set("associations", strings.Join(associations, ","))
	}

	var object hubspotdomain.Object
	if err := c.get(ctx, objectPath(objectType, objectID), query, &object); err != nil {
		return nil, err
	}

	return &object, nil
}
