package hubspot

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
)

// FetchFormStatistics busca, com concorrência limitada, as visualizações e
// envios de cada formulário no período. Formulário cuja consulta falhou fica
// de fora do mapa e a linha de saída correspondente sai zerada.
func (s *CRMIntegrator) FetchFormStatistics(formIDs map[string]string, startDate, endDate time.Time) map[string]domain.FormStatistics {
	stats := make(map[string]domain.FormStatistics, len(formIDs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.cfg.Sync.MaxConcurrentLookups)

	for formName, formID := range formIDs {
		wg.Add(1)
		sem <- struct{}{}

		go func(formName, formID string) {
			defer wg.Done()
			defer func() { <-sem }()

			var resp *hubspotdomain.FormStatisticsResponse

			err := s.retry.Do("hubspot_form_statistics", func() error {
				var reqErr error
				resp, reqErr = s.Client.GetFormStatistics(formID, startDate, endDate)
				return reqErr
			})
			if err != nil {
				logrus.WithError(err).WithField("form_id", formID).
					Warn("Falha ao buscar estatísticas do formulário")
				return
			}

			mu.Lock()
			stats[formName] = domain.FormStatistics{
				Views:       resp.Views,
				Submissions: resp.Submissions,
			}
			mu.Unlock()
		}(formName, formID)
	}

	wg.Wait()

	return stats
}
