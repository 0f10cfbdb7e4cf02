package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/deal-status-api/internal/api"
	"github.com/vfg2006/deal-status-api/internal/config"
	"github.com/vfg2006/deal-status-api/internal/scheduler"
	"github.com/vfg2006/deal-status-api/internal/usecases/dealstatus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hubspotClient := hubspotclient.NewClient(cfg)
	hubspotIntegrator := hubspot.New(hubspotClient)

	dealStatusService := dealstatus.NewService(hubspotIntegrator, cfg)

	tokenCheckService := scheduler.NewTokenCheckService(hubspotIntegrator, cfg)
	if err := tokenCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação do token do HubSpot")
	}

	logrus.WithField("variant", cfg.DealStatus.Variant).Info("Endpoint de status de negócios configurado")

	server, err := api.New(cfg, dealStatusService, tokenCheckService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
