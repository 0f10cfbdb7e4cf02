package hubspotclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	hubspotdomain "github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/deal-status-api/internal/config"
)

const defaultTimeout = 30 * time.Second

// Tipos de objeto do CRM usados nas rotas e nas associações
const (
	ObjectTypeDeals     = "deals"
	ObjectTypeCompanies = "companies"
)

type Client interface {
	GetDealByID(ctx context.Context, dealID string, properties []string, associations []string) (*hubspotdomain.Object, error)
	GetDealAssociations(ctx context.Context, dealID string, toObjectType string) (*hubspotdomain.AssociationsResponse, error)
	GetCompanyByID(ctx context.Context, companyID string, properties []string) (*hubspotdomain.Object, error)
	GetOwnerByID(ctx context.Context, ownerID string) (*hubspotdomain.Owner, error)
	CheckToken(ctx context.Context) error
}

// HubSpotClient guarda apenas configuração imutável e pode ser compartilhado
// entre requisições concorrentes.
type HubSpotClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.HubSpot.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HubSpotClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(cfg.HubSpot.BaseURL, "/"),
		accessToken: cfg.HubSpot.AccessToken,
	}
}
