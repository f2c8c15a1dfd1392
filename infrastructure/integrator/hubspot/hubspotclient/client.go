package hubspotclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const baseURL = "https://api.hubapi.com"

type Client interface {
	SearchContacts(req *hubspotdomain.SearchRequest) (*hubspotdomain.SearchResponse, error)
	GetAssociationPage(fromType, fromID, toType string) (*hubspotdomain.AssociationPage, error)
	BatchReadDeals(ids []string, properties []string) (*hubspotdomain.BatchReadResponse, error)
	GetMarketingCampaign(campaignID string) (*hubspotdomain.MarketingCampaign, error)
	GetEngagement(engagementID int64) (*hubspotdomain.EngagementResponse, error)
	GetFormStatistics(formID string, startDate, endDate time.Time) (*hubspotdomain.FormStatisticsResponse, error)
	ProbeCapabilities() hubspotdomain.Capabilities
}

type HubSpotClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &HubSpotClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// doRequest executa uma requisição autenticada contra a API do HubSpot e
// decodifica a resposta em out. Erros HTTP viram *hubspotdomain.APIError
// para que o mecanismo de retry consiga classificá-los pelo status.
func (c *HubSpotClient) doRequest(method, path string, payload interface{}, out interface{}) error {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao codificar o corpo da requisição: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.HubSpot.PrivateAppToken)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return err
		}
	}

	return nil
}

func parseAPIError(status int, body []byte) error {
	var errResp hubspotdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
		return &hubspotdomain.APIError{
			Status:  status,
			Message: string(body),
		}
	}

	return &hubspotdomain.APIError{
		Status:   status,
		Category: errResp.Category,
		Message:  errResp.Message,
	}
}
