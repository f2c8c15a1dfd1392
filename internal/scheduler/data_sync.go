package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/usecases/syncing"
)

// DataSyncService gerencia o agendamento e a execução da sincronização de
// dados de anúncios e CRM para a planilha
type DataSyncService struct {
	scheduler   *gocron.Scheduler
	appConfig   *config.Config
	syncService syncing.Service

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SyncReport
}

// NewDataSyncService cria uma nova instância do serviço de sincronização
func NewDataSyncService(syncService syncing.Service, appConfig *config.Config) *DataSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.Sync.CronSchedule,
		"data_types":    appConfig.Sync.DataTypes,
		"lookback_days": appConfig.Sync.LookbackDays,
		"year_to_date":  appConfig.Sync.YearToDate,
		"sync_enabled":  appConfig.Sync.Enabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &DataSyncService{
		scheduler:   scheduler,
		appConfig:   appConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DataSyncService) Start(ctx context.Context) error {
	if !s.appConfig.Sync.Enabled {
		logrus.Info("Sincronização agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.appConfig.Sync.CronSchedule).
		Info("Iniciando agendador de sincronização")

	_, err := s.scheduler.Cron(s.appConfig.Sync.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa o pipeline garantindo uma execução por vez
func (s *DataSyncService) runSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report := s.syncService.Run()

	s.syncMutex.Lock()
	s.lastReport = report
	s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização
func (s *DataSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual")
	go s.runSync()
}

// GetStatus retorna o status atual do agendador
func (s *DataSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.appConfig.Sync.Enabled,
		"sync_cron":              s.appConfig.Sync.CronSchedule,
		"sync_data_types":        s.appConfig.Sync.DataTypes,
		"sync_lookback_days":     s.appConfig.Sync.LookbackDays,
		"sync_year_to_date":      s.appConfig.Sync.YearToDate,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_run_id"] = s.lastReport.RunID
		status["last_run_stages"] = s.lastReport.Stages
	}

	return status
}
