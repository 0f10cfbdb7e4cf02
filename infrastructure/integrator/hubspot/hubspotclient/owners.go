package hubspotclient

import (
	"context"
	"net/url"

	hubspotdomain "github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/domain"
)

func (c *HubSpotClient) GetOwnerByID(ctx context.Context, ownerID string) (*hubspotdomain.Owner, error) {
	if ownerID == "" {
		return nil, ErrEmptyObjectID
	}

	var owner hubspotdomain.Owner
	if err := c.get(ctx, "/crm/v3/owners/"+url.PathEscape(ownerID), nil, &owner); err != nil {
		return nil, err
	}

	return &owner, nil
}

// CheckToken faz a menor leitura possível para confirmar que o token é aceito.
func (c *HubSpotClient) CheckToken(ctx context.Context) error {
	query := url.Values{}
	query.Set("limit", "1")

	var page hubspotdomain.OwnersPage
	return c.get(ctx, "/crm/v3/owners", query, &page)
}
