package scheduler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hubspotdomain "github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/mocks"
	"github.com/vfg2006/deal-status-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newTokenCheckConfig(enabled bool) *config.Config {
	return &config.Config{
		TokenCheck: config.TokenCheck{
			CronSchedule:   "*/30 * * * *",
			TimeoutSeconds: 1,
			Enabled:        enabled,
		},
	}
}

func TestTokenCheckService_check(t *testing.T) {
	tests := []struct {
		name         string
		checkErr     error
		wantHealthy  bool
		wantRejected bool
		wantError    string
	}{
		{
			name:        "token válido",
			wantHealthy: true,
		},
		{
			name: "token rejeitado",
			checkErr: &hubspotdomain.APIError{
				StatusCode: http.StatusUnauthorized,
				Body:       &hubspotdomain.ErrorResponse{Message: "Authentication credentials not found."},
			},
			wantHealthy:  false,
			wantRejected: true,
			wantError:    "hubspot: HTTP-Code: 401 Message: Authentication credentials not found.",
		},
		{
			name:         "token sem permissão",
			checkErr:     &hubspotdomain.APIError{StatusCode: http.StatusForbidden},
			wantHealthy:  false,
			wantRejected: true,
			wantError:    "hubspot: HTTP-Code: 403 Forbidden",
		},
		{
			name:         "CRM indisponível não marca o token como rejeitado",
			checkErr:     errors.New("dial tcp: connection refused"),
			wantHealthy:  false,
			wantRejected: false,
			wantError:    "dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			crm := mocks.NewMockHubSpotIntegrator(ctrl)
			crm.EXPECT().CheckToken(gomock.Any()).Return(tt.checkErr)

			service := NewTokenCheckService(crm, newTokenCheckConfig(true))

			before := service.Status()
			assert.Nil(t, before.Healthy)
			assert.Nil(t, before.LastCheckedAt)

			service.check(context.Background())

			status := service.Status()
			require.NotNil(t, status.Healthy)
			assert.Equal(t, tt.wantHealthy, *status.Healthy)
			assert.Equal(t, tt.wantError, status.LastError)
			assert.Equal(t, tt.wantRejected, status.TokenRejected)
			assert.True(t, status.Enabled)
			assert.False(t, status.Running)
			assert.Len(t, status.LastRunID, 6)
			require.NotNil(t, status.LastCheckedAt)
			assert.WithinDuration(t, time.Now(), *status.LastCheckedAt, 5*time.Second)
		})
	}
}

func TestTokenCheckService_check_UsesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockHubSpotIntegrator(ctrl)
	crm.EXPECT().CheckToken(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})

	service := NewTokenCheckService(crm, newTokenCheckConfig(true))
	service.check(context.Background())
}

func TestTokenCheckService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockHubSpotIntegrator(ctrl)

	service := NewTokenCheckService(crm, newTokenCheckConfig(false))

	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.Enabled())
	assert.False(t, service.Status().Enabled)
	assert.Nil(t, service.Status().Healthy)
}

func TestTokenCheckService_Start_InvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockHubSpotIntegrator(ctrl)

	cfg := newTokenCheckConfig(true)
	cfg.TokenCheck.CronSchedule = "not a cron"

	service := NewTokenCheckService(crm, cfg)

	err := service.Start(context.Background())
	assert.Error(t, err)
}
