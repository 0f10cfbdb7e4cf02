package dealstatus

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hubspotdomain "github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/mocks"
	"github.com/vfg2006/deal-status-api/internal/config"
	"github.com/vfg2006/deal-status-api/internal/domain"
	"github.com/vfg2006/deal-status-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newConfig(variant string) *config.Config {
	return &config.Config{
		DealStatus: config.DealStatus{Variant: variant},
	}
}

func testDeal(companyIDs ...string) *domain.Deal {
	return &domain.Deal{
		ID: "42",
		Properties: domain.Properties{
			"dealname":  stringPtr("Piscina Norte"),
			"dealstage": stringPtr("contractsent"),
			"amount":    nil,
		},
		CompanyIDs: companyIDs,
	}
}

func testCompany(ownerID *string) *domain.Company {
	return &domain.Company{
		ID: "7",
		Properties: domain.Properties{
			"name":                     stringPtr("Acme"),
			"hubspot_owner_id":         ownerID,
			"customer_potential_sites": stringPtr("12"),
			"customer_potential_pools": stringPtr("3"),
		},
	}
}

func TestService_GetDealStatus_Full(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(crm *mocks.MockHubSpotIntegrator)
		validate func(t *testing.T, status *domain.DealStatus)
	}{
		{
			name: "negócio sem empresa associada - company e owner nulos",
			setup: func(crm *mocks.MockHubSpotIntegrator) {
				crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(testDeal(), nil)
			},
			validate: func(t *testing.T, status *domain.DealStatus) {
				assert.Equal(t, "Piscina Norte", status.Deal.Properties.Get("dealname"))
				assert.Nil(t, status.Company)
				assert.Nil(t, status.Owner)
			},
		},
		{
			name: "empresa sem responsável - owner nulo e nenhuma busca de owner",
			setup: func(crm *mocks.MockHubSpotIntegrator) {
				crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(testDeal("7"), nil)
				crm.EXPECT().GetCompany(gomock.Any(), "7").Return(testCompany(nil), nil)
			},
			validate: func(t *testing.T, status *domain.DealStatus) {
				require.NotNil(t, status.Company)
				assert.Equal(t, "Acme", status.Company.Properties.Get("name"))
				assert.Nil(t, status.Owner)
			},
		},
		{
			name: "responsável vazio é tratado como ausente",
			setup: func(crm *mocks.MockHubSpotIntegrator) {
				crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(testDeal("7"), nil)
				crm.EXPECT().GetCompany(gomock.Any(), "7").Return(testCompany(stringPtr("")), nil)
			},
			validate: func(t *testing.T, status *domain.DealStatus) {
				assert.NotNil(t, status.Company)
				assert.Nil(t, status.Owner)
			},
		},
		{
			name: "empresa com responsável - owner preenchido",
			setup: func(crm *mocks.MockHubSpotIntegrator) {
				crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(testDeal("7"), nil)
				crm.EXPECT().GetCompany(gomock.Any(), "7").Return(testCompany(stringPtr("99")), nil)
				crm.EXPECT().GetOwner(gomock.Any(), "99").Return(&domain.Owner{
					ID:        "99",
					FirstName: "Ana",
					LastName:  "Souza",
					Email:     "ana@example.com",
				}, nil)
			},
			validate: func(t *testing.T, status *domain.DealStatus) {
				require.NotNil(t, status.Owner)
				assert.Equal(t, "Ana", status.Owner.FirstName)
				assert.Equal(t, "Souza", status.Owner.LastName)
				assert.Equal(t, "ana@example.com", status.Owner.Email)
			},
		},
		{
			name: "somente a primeira empresa é lida",
			setup: func(crm *mocks.MockHubSpotIntegrator) {
				crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(testDeal("7", "8", "9"), nil)
				crm.EXPECT().GetCompany(gomock.Any(), "7").Return(testCompany(nil), nil)
			},
			validate: func(t *testing.T, status *domain.DealStatus) {
				assert.Equal(t, "7", status.Company.ID)
			},
		},
		{
			name: "falha na empresa - company e owner nulos, negócio preservado",
			setup: func(crm *mocks.MockHubSpotIntegrator) {
				crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(testDeal("7"), nil)
				crm.EXPECT().GetCompany(gomock.Any(), "7").Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, status *domain.DealStatus) {
				assert.Equal(t, "Piscina Norte", status.Deal.Properties.Get("dealname"))
				assert.Nil(t, status.Company)
				assert.Nil(t, status.Owner)
			},
		},
		{
			name: "falha no responsável - owner nulo, empresa preservada",
			setup: func(crm *mocks.MockHubSpotIntegrator) {
				crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(testDeal("7"), nil)
				crm.EXPECT().GetCompany(gomock.Any(), "7").Return(testCompany(stringPtr("99")), nil)
				crm.EXPECT().GetOwner(gomock.Any(), "99").Return(nil, &hubspotdomain.APIError{StatusCode: http.StatusNotFound})
			},
			validate: func(t *testing.T, status *domain.DealStatus) {
				require.NotNil(t, status.Company)
				assert.Equal(t, "99", status.Company.OwnerID())
				assert.Nil(t, status.Owner)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			crm := mocks.NewMockHubSpotIntegrator(ctrl)
			tt.setup(crm)

			service := NewService(crm, newConfig(config.VariantFull))

			status, err := service.GetDealStatus(context.Background(), "42")
			require.NoError(t, err)
			require.NotNil(t, status)
			assert.True(t, status.IncludeOwner)
			tt.validate(t, status)
		})
	}
}

func TestService_GetDealStatus_Basic(t *testing.T) {
	t.Run("associações em chamada separada e sem owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		crm := mocks.NewMockHubSpotIntegrator(ctrl)

		gomock.InOrder(
			crm.EXPECT().GetDeal(gomock.Any(), "42", false).Return(testDeal(), nil),
			crm.EXPECT().GetDealCompanyIDs(gomock.Any(), "42").Return([]string{"7"}, nil),
			crm.EXPECT().GetCompany(gomock.Any(), "7").Return(testCompany(stringPtr("99")), nil),
		)

		service := NewService(crm, newConfig(config.VariantBasic))

		status, err := service.GetDealStatus(context.Background(), "42")
		require.NoError(t, err)
		assert.False(t, status.IncludeOwner)
		assert.Equal(t, "7", status.Company.ID)
		assert.Nil(t, status.Owner)
	})

	t.Run("falha na leitura das associações é fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		crm := mocks.NewMockHubSpotIntegrator(ctrl)

		crm.EXPECT().GetDeal(gomock.Any(), "42", false).Return(testDeal(), nil)
		crm.EXPECT().GetDealCompanyIDs(gomock.Any(), "42").Return(nil, errors.New("timeout"))

		service := NewService(crm, newConfig(config.VariantBasic))

		status, err := service.GetDealStatus(context.Background(), "42")
		assert.Nil(t, status)

		var statusErr *DealStatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, apiErrors.ErrInternalServer, statusErr.Code)
		assert.Equal(t, "timeout", statusErr.Message)
	})
}

func TestService_GetDealStatus_Errors(t *testing.T) {
	tests := []struct {
		name        string
		dealErr     error
		wantSentry  error
		wantCode    string
		wantMessage string
	}{
		{
			name: "404 do CRM vira ErrObjectNotFound com a mensagem do corpo",
			dealErr: &hubspotdomain.APIError{
				StatusCode: http.StatusNotFound,
				Body:       &hubspotdomain.ErrorResponse{Status: "error", Message: "Object not found.", Category: "OBJECT_NOT_FOUND"},
			},
			wantSentry:  ErrDealNotFound,
			wantCode:    apiErrors.ErrObjectNotFound,
			wantMessage: "Object not found.",
		},
		{
			name: "401 do CRM vira erro interno",
			dealErr: &hubspotdomain.APIError{
				StatusCode: http.StatusUnauthorized,
				Body:       &hubspotdomain.ErrorResponse{Message: "Authentication credentials not found."},
			},
			wantSentry:  ErrDealFetch,
			wantCode:    apiErrors.ErrInternalServer,
			wantMessage: "Authentication credentials not found.",
		},
		{
			name:        "erro sem corpo usa a mensagem do próprio erro",
			dealErr:     &hubspotdomain.APIError{StatusCode: http.StatusBadGateway},
			wantSentry:  ErrDealFetch,
			wantCode:    apiErrors.ErrInternalServer,
			wantMessage: "hubspot: HTTP-Code: 502 Bad Gateway",
		},
		{
			name:        "erro de rede",
			dealErr:     errors.New("dial tcp: connection refused"),
			wantSentry:  ErrDealFetch,
			wantCode:    apiErrors.ErrInternalServer,
			wantMessage: "dial tcp: connection refused",
		},
		{
			name:        "erro sem mensagem usa o texto genérico",
			dealErr:     errors.New(""),
			wantSentry:  ErrDealFetch,
			wantCode:    apiErrors.ErrInternalServer,
			wantMessage: MessageInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			crm := mocks.NewMockHubSpotIntegrator(ctrl)
			crm.EXPECT().GetDeal(gomock.Any(), "42", true).Return(nil, tt.dealErr)

			service := NewService(crm, newConfig(config.VariantFull))

			status, err := service.GetDealStatus(context.Background(), "42")
			assert.Nil(t, status)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantSentry)
			assert.ErrorIs(t, err, tt.dealErr)

			var statusErr *DealStatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.wantCode, statusErr.Code)
			assert.Equal(t, tt.wantMessage, statusErr.Message)
			assert.Equal(t, "42", statusErr.DealID)
		})
	}
}

func TestService_GetDealStatus_MissingDealID(t *testing.T) {
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockHubSpotIntegrator(ctrl)

	service := NewService(crm, newConfig(config.VariantFull))

	status, err := service.GetDealStatus(context.Background(), "")
	assert.Nil(t, status)
	assert.ErrorIs(t, err, ErrDealIDRequired)

	var statusErr *DealStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, statusErr.Code)
	assert.Equal(t, MessageDealIDRequired, statusErr.Message)
}
