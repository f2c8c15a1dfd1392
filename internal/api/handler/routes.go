package handler

import (
	"net/http"

	"github.com/vfg2006/ads-crm-sync-api/internal/api/handler/router"
	"github.com/vfg2006/ads-crm-sync-api/internal/scheduler"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(syncService *scheduler.DataSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: RunSync(syncService),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: SyncStatus(syncService),
		},
	}
}
