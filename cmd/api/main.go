package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/ads-crm-sync-api/internal/api"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/internal/scheduler"
	"github.com/vfg2006/ads-crm-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-crm-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-crm-sync-api/pkg/retry"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retryPolicy := retry.New(
		cfg.Sync.MaxRetries,
		time.Duration(cfg.Sync.BaseBackoffMs)*time.Millisecond,
	)

	// Cada integração só é construída com o grupo de credenciais completo.
	// Grupo incompleto deixa o integrador nulo e o pipeline pula a fonte.
	var adsIntegrator syncing.AdsIntegrator
	if cfg.GoogleAds.Complete() {
		adsClient := adsclient.NewClient(cfg)
		adsIntegrator = googleads.New(cfg, adsClient, retryPolicy)
	}

	var crmIntegrator syncing.CRMIntegrator
	if cfg.HubSpot.Complete() {
		crmClient := hubspotclient.NewClient(cfg)
		crmIntegrator = hubspot.New(cfg, crmClient, retryPolicy)
	}

	var sink syncing.SheetSink
	if cfg.Sheets.Complete() {
		sheetsClient := sheetsclient.NewClient(cfg)
		sink = sheets.New(cfg, sheetsClient, retryPolicy)
	}

	syncService := syncing.New(cfg, adsIntegrator, crmIntegrator, sink, aggregating.New())

	dataSyncService := scheduler.NewDataSyncService(syncService, cfg)

	if err := dataSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização")
	} else {
		logrus.Info("Agendador de sincronização iniciado com sucesso")
	}

	server, err := api.New(cfg, dataSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
