package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/deal-status-api/internal/config"
	"github.com/vfg2006/deal-status-api/internal/domain"
	"github.com/vfg2006/deal-status-api/pkg/utils"
)

// TokenChecker é a parte do integrador do CRM usada pela verificação
type TokenChecker interface {
	CheckToken(ctx context.Context) error
}

// unauthorizedError é implementado pelos erros do cliente do HubSpot
type unauthorizedError interface {
	IsUnauthorized() bool
}

// TokenCheckConfig representa a configuração da verificação periódica do token do HubSpot
type TokenCheckConfig struct {
	CronSchedule string
	Timeout      time.Duration
	Enabled      bool
}

// TokenCheckService valida periodicamente o token do HubSpot e guarda o último resultado
type TokenCheckService struct {
	scheduler *gocron.Scheduler
	config    TokenCheckConfig
	crm       TokenChecker

	mu            sync.Mutex
	running       bool
	healthy       *bool
	lastRunID     string
	lastCheckedAt time.Time
	lastError     string
	tokenRejected bool
}

func NewTokenCheckService(crm TokenChecker, appConfig *config.Config) *TokenCheckService {
	checkConfig := TokenCheckConfig{
		CronSchedule: appConfig.TokenCheck.CronSchedule,
		Timeout:      time.Duration(appConfig.TokenCheck.TimeoutSeconds) * time.Second,
		Enabled:      appConfig.TokenCheck.Enabled,
	}
	if checkConfig.Timeout <= 0 {
		checkConfig.Timeout = 10 * time.Second
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"timeout":       checkConfig.Timeout.String(),
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração da verificação do token do HubSpot carregada")

	return &TokenCheckService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    checkConfig,
		crm:       crm,
	}
}

// Start agenda a verificação e executa uma primeira vez imediatamente
func (s *TokenCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação do token do HubSpot desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação do token do HubSpot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do token do HubSpot: %w", err)
	}

	s.scheduler.StartAsync()
	go s.check(ctx)

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação do token do HubSpot")
		s.scheduler.Stop()
	}()

	return nil
}

// Enabled indica se a verificação foi habilitada por configuração
func (s *TokenCheckService) Enabled() bool {
	return s.config.Enabled
}

// TriggerManualCheck executa a verificação fora do agendamento
func (s *TokenCheckService) TriggerManualCheck() {
	go s.check(context.Background())
}

// check ignora execuções concorrentes; a primeira em andamento prevalece
func (s *TokenCheckService) check(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Verificação do token do HubSpot já em andamento, ignorando")
		return
	}
	s.running = true
	s.mu.Unlock()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id da execução")
	}

	checkCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	checkErr := s.crm.CheckToken(checkCtx)

	s.mu.Lock()
	defer s.mu.Unlock()

	healthy := checkErr == nil
	s.running = false
	s.healthy = &healthy
	s.lastRunID = runID
	s.lastCheckedAt = time.Now()
	s.lastError = ""
	s.tokenRejected = false

	logger := logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(startTime).String(),
	})

	if checkErr != nil {
		s.lastError = checkErr.Error()

		var authErr unauthorizedError
		if errors.As(checkErr, &authErr) && authErr.IsUnauthorized() {
			s.tokenRejected = true
			logger.WithError(checkErr).Error("Token do HubSpot rejeitado")
			return
		}

		logger.WithError(checkErr).Error("CRM indisponível durante a verificação do token")
		return
	}

	logger.Info("Token do HubSpot verificado com sucesso")
}

// Status retorna uma cópia do último resultado
func (s *TokenCheckService) Status() domain.TokenCheckStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := domain.TokenCheckStatus{
		Enabled:       s.config.Enabled,
		Running:       s.running,
		LastRunID:     s.lastRunID,
		LastError:     s.lastError,
		TokenRejected: s.tokenRejected,
	}

	if s.healthy != nil {
		healthy := *s.healthy
		status.Healthy = &healthy
	}

	if !s.lastCheckedAt.IsZero() {
		checkedAt := s.lastCheckedAt
		status.LastCheckedAt = &checkedAt
	}

	return status
}
