package syncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-crm-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(dataTypes ...string) *config.Config {
	return &config.Config{
		Sync: config.Sync{
			DataTypes:    dataTypes,
			LookbackDays: 30,
		},
	}
}

func allDataTypes() []string {
	return []string{
		config.DataTypeGoogleAds,
		config.DataTypeUserConversions,
		config.DataTypeHubSpotForms,
	}
}

func testFormData() *domain.FormSubmissionData {
	return &domain.FormSubmissionData{
		Records: []domain.FormSubmissionRecord{
			{ContactID: "c1", FormName: "Fale Conosco"},
		},
		ContactDeals: map[string][]string{
			"c1": {"d1"},
		},
		Deals: map[string]domain.Deal{
			"d1": {
				ID:                      "d1",
				Bucket:                  domain.DealBucketClosedWon,
				AssociatedCampaignNames: []string{"Campanha A"},
			},
		},
	}
}

func TestRunFullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ads := mocks.NewMockAdsIntegrator(ctrl)
	crm := mocks.NewMockCRMIntegrator(ctrl)
	sink := mocks.NewMockSheetSink(ctrl)

	ads.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return([]domain.Campaign{
		{ID: "1", Name: "Campanha A", Network: "SEARCH", Cost: 100},
	})
	ads.EXPECT().FetchUserConversions(gomock.Any(), gomock.Any()).Return([]domain.ConversionEvent{
		{Date: "2025-08-29", CampaignID: "1", GCLID: "abc"},
	})
	crm.EXPECT().FetchFormSubmissionData(gomock.Any()).Return(testFormData(), nil)

	// As abas são escritas em sequência e nessa ordem
	gomock.InOrder(
		sink.EXPECT().WriteSheet("Google Ads Campaigns", gomock.Any(), gomock.Any()).Return(nil),
		sink.EXPECT().WriteSheet("User Conversions", gomock.Any(), gomock.Any()).Return(nil),
		sink.EXPECT().WriteSheet("Form Submissions", gomock.Any(), gomock.Any()).Return(nil),
		sink.EXPECT().WriteSheet("Resumo por Campanha", gomock.Any(), gomock.Any()).Return(nil),
		sink.EXPECT().WriteSheet("Resumo por Formulário", gomock.Any(), gomock.Any()).Return(nil),
	)

	service := New(testConfig(allDataTypes()...), ads, crm, sink, aggregating.New())
	report := service.Run()

	require.NotNil(t, report)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	stages := make(map[string]domain.StageResult)
	for _, stage := range report.Stages {
		stages[stage.Stage] = stage
	}

	assert.Equal(t, 1, stages["google_ads_campaigns"].Rows)
	assert.Equal(t, 1, stages["user_conversions"].Rows)
	assert.Equal(t, 1, stages["form_submissions"].Rows)
}

func TestRunSkipsSourceWithoutClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ads := mocks.NewMockAdsIntegrator(ctrl)
	sink := mocks.NewMockSheetSink(ctrl)

	ads.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return(nil)
	ads.EXPECT().FetchUserConversions(gomock.Any(), gomock.Any()).Return(nil)

	// Sem cliente do CRM, nem a aba bruta nem o resumo por formulário
	// são escritos
	sink.EXPECT().WriteSheet("Google Ads Campaigns", gomock.Any(), gomock.Any()).Return(nil)
	sink.EXPECT().WriteSheet("User Conversions", gomock.Any(), gomock.Any()).Return(nil)
	sink.EXPECT().WriteSheet("Resumo por Campanha", gomock.Any(), gomock.Any()).Return(nil)

	service := New(testConfig(allDataTypes()...), ads, nil, sink, aggregating.New())
	report := service.Run()

	require.NotNil(t, report)
}

func TestRunDataTypeSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ads := mocks.NewMockAdsIntegrator(ctrl)
	crm := mocks.NewMockCRMIntegrator(ctrl)
	sink := mocks.NewMockSheetSink(ctrl)

	// Só googleAds selecionado: conversões e CRM nunca são consultados
	ads.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return([]domain.Campaign{
		{ID: "1", Name: "Campanha A"},
	})

	sink.EXPECT().WriteSheet("Google Ads Campaigns", gomock.Any(), gomock.Any()).Return(nil)
	sink.EXPECT().WriteSheet("Resumo por Campanha", gomock.Any(), gomock.Any()).Return(nil)

	service := New(testConfig(config.DataTypeGoogleAds), ads, crm, sink, aggregating.New())
	service.Run()
}

func TestRunSheetErrorDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ads := mocks.NewMockAdsIntegrator(ctrl)
	sink := mocks.NewMockSheetSink(ctrl)

	ads.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		sink.EXPECT().
			WriteSheet("Google Ads Campaigns", gomock.Any(), gomock.Any()).
			Return(&sheetsdomain.APIError{Status: 500, Message: "backend error"}),
		sink.EXPECT().WriteSheet("Resumo por Campanha", gomock.Any(), gomock.Any()).Return(nil),
	)

	service := New(testConfig(config.DataTypeGoogleAds), ads, nil, sink, aggregating.New())
	report := service.Run()

	var failed *domain.StageResult
	for i := range report.Stages {
		if report.Stages[i].Stage == "sheet:Google Ads Campaigns" {
			failed = &report.Stages[i]
		}
	}

	require.NotNil(t, failed)
	assert.NotEmpty(t, failed.Error)
}

func TestRunSettleAllOnCRMFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ads := mocks.NewMockAdsIntegrator(ctrl)
	crm := mocks.NewMockCRMIntegrator(ctrl)
	sink := mocks.NewMockSheetSink(ctrl)

	ads.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return([]domain.Campaign{
		{ID: "1", Name: "Campanha A"},
	})
	ads.EXPECT().FetchUserConversions(gomock.Any(), gomock.Any()).Return(nil)
	crm.EXPECT().
		FetchFormSubmissionData(gomock.Any()).
		Return(nil, assert.AnError)

	// A falha do CRM não impede as abas das outras fontes
	sink.EXPECT().WriteSheet("Google Ads Campaigns", gomock.Any(), gomock.Any()).Return(nil)
	sink.EXPECT().WriteSheet("User Conversions", gomock.Any(), gomock.Any()).Return(nil)
	sink.EXPECT().WriteSheet("Resumo por Campanha", gomock.Any(), gomock.Any()).Return(nil)

	service := New(testConfig(allDataTypes()...), ads, crm, sink, aggregating.New())
	report := service.Run()

	var formStage *domain.StageResult
	for i := range report.Stages {
		if report.Stages[i].Stage == "form_submissions" {
			formStage = &report.Stages[i]
		}
	}

	require.NotNil(t, formStage)
	assert.NotEmpty(t, formStage.Error)
	assert.Equal(t, 0, formStage.Rows)
}
