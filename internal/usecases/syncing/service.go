package syncing

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/usecases/aggregating"
)

// AdsIntegrator busca campanhas e conversões na plataforma de anúncios.
type AdsIntegrator interface {
	FetchCampaigns(startDate, endDate time.Time) []domain.Campaign
	FetchUserConversions(startDate, endDate time.Time) []domain.ConversionEvent
}

// CRMIntegrator coleta os envios de formulário e os negócios do CRM.
type CRMIntegrator interface {
	FetchFormSubmissionData(reference time.Time) (*domain.FormSubmissionData, error)
}

// SheetSink substitui o conteúdo de uma aba da planilha.
type SheetSink interface {
	WriteSheet(sheetName string, headers []string, rows [][]interface{}) error
}

type Service interface {
	Run() *domain.SyncReport
}

type syncService struct {
	cfg        *config.Config
	ads        AdsIntegrator
	crm        CRMIntegrator
	sink       SheetSink
	aggregator aggregating.Service
	now        func() time.Time
}

func New(
	cfg *config.Config,
	ads AdsIntegrator,
	crm CRMIntegrator,
	sink SheetSink,
	aggregator aggregating.Service,
) Service {
	return &syncService{
		cfg:        cfg,
		ads:        ads,
		crm:        crm,
		sink:       sink,
		aggregator: aggregator,
		now:        time.Now,
	}
}

// Run executa o pipeline completo: as três buscas partem em paralelo e a
// escrita só começa depois que todas terminam, com sucesso ou não — a falha
// de uma fonte não descarta o resultado das outras. As abas são escritas em
// sequência, nunca duas ao mesmo tempo.
func (s *syncService) Run() *domain.SyncReport {
	report := &domain.SyncReport{
		RunID:     uuid.NewString(),
		StartedAt: s.now(),
	}

	logrus.WithField("run_id", report.RunID).Info("Iniciando sincronização")

	endDate := s.now()
	startDate := s.windowStart(endDate)

	var (
		campaigns   []domain.Campaign
		conversions []domain.ConversionEvent
		formData    *domain.FormSubmissionData
		formErr     error
	)

	var wg sync.WaitGroup

	if s.sourceEnabled(config.DataTypeGoogleAds, s.ads == nil) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			campaigns = s.ads.FetchCampaigns(startDate, endDate)
		}()
	}

	if s.sourceEnabled(config.DataTypeUserConversions, s.ads == nil) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conversions = s.ads.FetchUserConversions(startDate, endDate)
		}()
	}

	if s.sourceEnabled(config.DataTypeHubSpotForms, s.crm == nil) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			formData, formErr = s.crm.FetchFormSubmissionData(endDate)
		}()
	}

	wg.Wait()

	report.AddStage("google_ads_campaigns", len(campaigns), nil)
	report.AddStage("user_conversions", len(conversions), nil)
	if formData != nil {
		report.AddStage("form_submissions", len(formData.Records), formErr)
	} else {
		report.AddStage("form_submissions", 0, formErr)
	}

	s.writeSheets(report, campaigns, conversions, formData)

	report.FinishedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"duration": report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Sincronização concluída")

	return report
}

func (s *syncService) sourceEnabled(dataType string, clientMissing bool) bool {
	if !s.cfg.Sync.HasDataType(dataType) {
		logrus.WithField("data_type", dataType).Debug("Tipo de dado não selecionado")
		return false
	}

	if clientMissing {
		logrus.WithField("data_type", dataType).
			Warn("Cliente não configurado, pulando a fonte de dados")
		return false
	}

	return true
}

// windowStart calcula o início da janela de sincronização
func (s *syncService) windowStart(endDate time.Time) time.Time {
	if s.cfg.Sync.YearToDate {
		return time.Date(endDate.Year(), time.January, 1, 0, 0, 0, 0, endDate.Location())
	}

	return endDate.AddDate(0, 0, -s.cfg.Sync.LookbackDays)
}

// writeSheets escreve as abas em sequência. A planilha é um recurso externo
// compartilhado: nunca há duas escritas em paralelo, para que um leitor não
// veja estados intercalados.
func (s *syncService) writeSheets(
	report *domain.SyncReport,
	campaigns []domain.Campaign,
	conversions []domain.ConversionEvent,
	formData *domain.FormSubmissionData,
) {
	if s.sink == nil {
		logrus.Warn("Planilha não configurada, nenhuma aba será escrita")
		return
	}

	if s.cfg.Sync.HasDataType(config.DataTypeGoogleAds) {
		s.writeSheet(report, sheetCampaigns, campaignHeaders, campaignRows(campaigns))
	}

	if s.cfg.Sync.HasDataType(config.DataTypeUserConversions) {
		s.writeSheet(report, sheetConversions, conversionHeaders, conversionRows(conversions))
	}

	if s.cfg.Sync.HasDataType(config.DataTypeHubSpotForms) && formData != nil {
		s.writeSheet(report, sheetFormSubmissions, formSubmissionHeaders, formSubmissionRows(formData.Records))
	}

	var deals map[string]domain.Deal
	if formData != nil {
		deals = formData.Deals
	}

	if s.cfg.Sync.HasDataType(config.DataTypeGoogleAds) || s.cfg.Sync.HasDataType(config.DataTypeHubSpotForms) {
		campaignSummary := s.aggregator.AggregateByCampaign(campaigns, deals)
		s.writeSheet(report, sheetCampaignSummary, campaignSummaryHeaders, aggregationRows(campaignSummary))
	}

	if formData != nil {
		formSummary := s.aggregator.AggregateByForm(formData)
		s.writeSheet(report, sheetFormSummary, formSummaryHeaders, formAggregationRows(formSummary))
	}
}

// writeSheet escreve uma aba e registra o desfecho. Erros da planilha não
// derrubam a execução: as abas seguintes ainda são escritas.
func (s *syncService) writeSheet(report *domain.SyncReport, sheetName string, headers []string, rows [][]interface{}) {
	err := s.sink.WriteSheet(sheetName, headers, rows)
	if err != nil {
		logrus.WithError(err).WithField("sheet", sheetName).
			Error("Erro ao escrever a aba, seguindo para a próxima")
	}

	report.AddStage("sheet:"+sheetName, len(rows), err)
}
