package googleads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	adsdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/pkg/retry"
	"go.uber.org/mock/gomock"
)

func newTestIntegrator(t *testing.T) (*AdsIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)
	policy := retry.New(2, time.Millisecond).WithClock(
		func(time.Duration) {},
		func() time.Duration { return 0 },
	)

	cfg := &config.Config{}
	return New(cfg, mockClient, policy), mockClient
}

func TestFetchCampaignsCostConversion(t *testing.T) {
	service, mockClient := newTestIntegrator(t)

	mockClient.EXPECT().
		SearchStream(gomock.Any()).
		Return([]adsdomain.ReportRow{
			{
				Campaign: adsdomain.Campaign{ID: 1, Name: "Campanha A", Status: "ENABLED"},
				Metrics:  adsdomain.Metrics{CostMicros: 1_500_000, Clicks: 10, Impressions: 100, Conversions: 2},
				Segments: adsdomain.Segments{AdNetworkType: 2},
			},
			{
				Campaign: adsdomain.Campaign{ID: 2, Name: "Campanha B", Status: "ENABLED"},
				Metrics:  adsdomain.Metrics{CostMicros: 50_000_000},
				Segments: adsdomain.Segments{AdNetworkType: 4},
			},
		}, nil)

	end := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	campaigns := service.FetchCampaigns(end.AddDate(0, 0, -30), end)

	assert.Len(t, campaigns, 2)
	// 1_500_000 micros correspondem a exatamente 1.50 na moeda padrão
	assert.Equal(t, 1.50, campaigns[0].Cost)
	assert.Equal(t, 50.0, campaigns[1].Cost)
	assert.Equal(t, "SEARCH", campaigns[0].Network)
	assert.Equal(t, "DISPLAY", campaigns[1].Network)
	assert.Equal(t, "1", campaigns[0].ID)
}

func TestFetchCampaignsUnknownNetworkCode(t *testing.T) {
	service, mockClient := newTestIntegrator(t)

	mockClient.EXPECT().
		SearchStream(gomock.Any()).
		Return([]adsdomain.ReportRow{
			{
				Campaign: adsdomain.Campaign{ID: 3, Name: "Campanha C"},
				Segments: adsdomain.Segments{AdNetworkType: 42},
			},
		}, nil)

	end := time.Now()
	campaigns := service.FetchCampaigns(end.AddDate(0, 0, -7), end)

	assert.Len(t, campaigns, 1)
	assert.Equal(t, "UNKNOWN_VALUE_42", campaigns[0].Network)
}

func TestFetchCampaignsDegradesToEmptyOnError(t *testing.T) {
	service, mockClient := newTestIntegrator(t)

	// 403 não é re-tentado: uma única chamada
	mockClient.EXPECT().
		SearchStream(gomock.Any()).
		Return(nil, &adsdomain.APIError{Status: 403, Message: "permission denied"})

	end := time.Now()
	campaigns := service.FetchCampaigns(end.AddDate(0, 0, -7), end)

	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)
}

func TestFetchCampaignsRetriesRateLimit(t *testing.T) {
	service, mockClient := newTestIntegrator(t)

	gomock.InOrder(
		mockClient.EXPECT().
			SearchStream(gomock.Any()).
			Return(nil, &adsdomain.APIError{Status: 429, Message: "rate limit"}),
		mockClient.EXPECT().
			SearchStream(gomock.Any()).
			Return([]adsdomain.ReportRow{
				{Campaign: adsdomain.Campaign{ID: 1, Name: "Campanha A"}},
			}, nil),
	)

	end := time.Now()
	campaigns := service.FetchCampaigns(end.AddDate(0, 0, -7), end)

	assert.Len(t, campaigns, 1)
}

func TestFetchUserConversionsSkipsFailedDay(t *testing.T) {
	service, mockClient := newTestIntegrator(t)

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		mockClient.EXPECT().
			SearchStream(gomock.Any()).
			Return([]adsdomain.ReportRow{
				{
					Campaign:  adsdomain.Campaign{ID: 1},
					Segments:  adsdomain.Segments{Date: "2025-08-01"},
					ClickView: adsdomain.ClickView{GCLID: "gclid-1"},
				},
			}, nil),
		// Dia 2 falha com erro terminal: o dia é pulado, não zerado
		mockClient.EXPECT().
			SearchStream(gomock.Any()).
			Return(nil, &adsdomain.APIError{Status: 400, Message: "bad request"}),
		mockClient.EXPECT().
			SearchStream(gomock.Any()).
			Return([]adsdomain.ReportRow{
				{
					Campaign:  adsdomain.Campaign{ID: 2},
					Segments:  adsdomain.Segments{Date: "2025-08-03"},
					ClickView: adsdomain.ClickView{GCLID: "gclid-3"},
				},
			}, nil),
	)

	conversions := service.FetchUserConversions(start, end)

	assert.Len(t, conversions, 2)
	assert.Equal(t, "2025-08-01", conversions[0].Date)
	assert.Equal(t, "2025-08-03", conversions[1].Date)
}

func TestFetchUserConversionsDefaultsMissingFields(t *testing.T) {
	service, mockClient := newTestIntegrator(t)

	day := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	mockClient.EXPECT().
		SearchStream(gomock.Any()).
		Return([]adsdomain.ReportRow{
			{Segments: adsdomain.Segments{Date: "2025-08-01"}},
		}, nil)

	conversions := service.FetchUserConversions(day, day)

	assert.Len(t, conversions, 1)
	assert.Equal(t, "N/A", conversions[0].CampaignID)
	assert.Equal(t, "N/A", conversions[0].GCLID)
}
