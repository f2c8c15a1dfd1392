package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-crm-sync-api/internal/scheduler"
	"github.com/vfg2006/ads-crm-sync-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunSync dispara manualmente uma execução do pipeline de sincronização.
// A execução acontece em segundo plano; a resposta volta imediatamente.
func RunSync(syncService *scheduler.DataSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		logrus.Info("Sincronização manual solicitada via API")
		syncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)

		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "sincronização iniciada",
		}); err != nil {
			logrus.WithError(err).Error("Erro ao codificar a resposta")
		}
	}
}

// SyncStatus retorna o status do agendador e o resultado da última execução.
func SyncStatus(syncService *scheduler.DataSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(syncService.GetStatus()); err != nil {
			logrus.WithError(err).Error("Erro ao codificar a resposta")
		}
	}
}
