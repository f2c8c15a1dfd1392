package googleads

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
	"github.com/vfg2006/ads-crm-sync-api/pkg/retry"
	"github.com/vfg2006/ads-crm-sync-api/pkg/utils"
)

// costMicrosDivisor converte metrics.cost_micros em unidades monetárias
// padrão. O valor é único para todas as linhas de uma mesma execução; ver
// TestFetchCampaignsCostConversion, que fixa 1_500_000 -> 1.50.
const costMicrosDivisor = 1_000_000

type AdsIntegrator struct {
	cfg    *config.Config
	client adsclient.Client
	retry  *retry.Policy
}

func New(cfg *config.Config, client adsclient.Client, retryPolicy *retry.Policy) *AdsIntegrator {
	return &AdsIntegrator{
		cfg:    cfg,
		client: client,
		retry:  retryPolicy,
	}
}

// FetchCampaigns busca as campanhas do período com a janela limitada ao
// máximo aceito pela plataforma. Qualquer erro degrada para lista vazia: o
// agregador enxerga "nenhuma campanha", nunca uma falha.
func (s *AdsIntegrator) FetchCampaigns(startDate, endDate time.Time) []domain.Campaign {
	startDate = utils.ClampToMaxWindow(startDate, endDate)

	statusFilter := "'ENABLED'"
	if s.cfg.GoogleAds.IncludePaused {
		statusFilter = "'ENABLED', 'PAUSED'"
	}

	query := fmt.Sprintf(
		`SELECT campaign.id, campaign.name, campaign.status, segments.ad_network_type, `+
			`metrics.cost_micros, metrics.clicks, metrics.impressions, metrics.conversions `+
			`FROM campaign `+
			`WHERE segments.date BETWEEN '%s' AND '%s' AND campaign.status IN (%s)`,
		utils.FormatDate(startDate),
		utils.FormatDate(endDate),
		statusFilter,
	)

	var rows []adsdomain.ReportRow
	err := s.retry.Do("googleads.campaigns", func() error {
		var callErr error
		rows, callErr = s.client.SearchStream(query)
		return callErr
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start_date": utils.FormatDate(startDate),
			"end_date":   utils.FormatDate(endDate),
			"error":      err.Error(),
		}).Error("Erro ao buscar campanhas do Google Ads. Seguindo com lista vazia.")
		return []domain.Campaign{}
	}

	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, domain.Campaign{
			ID:          strconv.FormatInt(row.Campaign.ID, 10),
			Name:        row.Campaign.Name,
			Network:     adsdomain.NetworkLabel(row.Segments.AdNetworkType),
			Cost:        float64(row.Metrics.CostMicros) / costMicrosDivisor,
			Clicks:      row.Metrics.Clicks,
			Impressions: row.Metrics.Impressions,
			Conversions: row.Metrics.Conversions,
			Status:      row.Campaign.Status,
		})
	}

	logrus.WithField("campaigns", len(campaigns)).Info("Campanhas do Google Ads carregadas")
	return campaigns
}

// FetchUserConversions busca os cliques convertidos dia a dia, porque a
// plataforma só aceita consultas de click_view com granularidade de um dia.
// Um dia que falha é pulado e registrado; os demais seguem.
func (s *AdsIntegrator) FetchUserConversions(startDate, endDate time.Time) []domain.ConversionEvent {
	var conversions []domain.ConversionEvent

	for _, day := range utils.DaysBetween(startDate, endDate) {
		formattedDay := utils.FormatDate(day)

		query := fmt.Sprintf(
			`SELECT segments.date, campaign.id, click_view.gclid `+
				`FROM click_view WHERE segments.date = '%s'`,
			formattedDay,
		)

		var rows []adsdomain.ReportRow
		err := s.retry.Do("googleads.click_view", func() error {
			var callErr error
			rows, callErr = s.client.SearchStream(query)
			return callErr
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"date":  formattedDay,
				"error": err.Error(),
			}).Warn("Erro ao buscar conversões do dia. Pulando para o próximo.")
			continue
		}

		for _, row := range rows {
			campaignID := "N/A"
			if row.Campaign.ID != 0 {
				campaignID = strconv.FormatInt(row.Campaign.ID, 10)
			}

			gclid := row.ClickView.GCLID
			if gclid == "" {
				gclid = "N/A"
			}

			conversions = append(conversions, domain.ConversionEvent{
				Date:       row.Segments.Date,
				CampaignID: campaignID,
				GCLID:      gclid,
			})
		}
	}

	logrus.WithField("conversions", len(conversions)).Info("Conversões de usuários carregadas")
	return conversions
}
