package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
)

const (
	baseURL       = "https://googleads.googleapis.com"
	oauthTokenURL = "https://oauth2.googleapis.com/token"
)

type Client interface {
	SearchStream(query string) ([]adsdomain.ReportRow, error)
}

type GoogleAdsClient struct {
	httpClient *http.Client
	cfg        *config.Config

	tokenMutex     sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg: cfg,
	}
}

// SearchStream executa uma consulta GAQL no endpoint searchStream e devolve
// todas as linhas do stream. O stream é single-pass; o resultado é
// materializado em memória.
func (c *GoogleAdsClient) SearchStream(query string) ([]adsdomain.ReportRow, error) {
	token, err := c.ensureAccessToken()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/%s/customers/%s/googleAds:searchStream",
		baseURL,
		c.cfg.GoogleAds.APIVersion,
		c.cfg.GoogleAds.CustomerID,
	)

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	if c.cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var chunks []adsdomain.SearchStreamChunk
	if err := json.Unmarshal(body, &chunks); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	var rows []adsdomain.ReportRow
	for _, chunk := range chunks {
		rows = append(rows, chunk.Results...)
	}

	return rows, nil
}

// ensureAccessToken devolve um access token válido, renovando via refresh
// token quando o atual expirou. A margem de 1 minuto evita usar um token na
// iminência de expirar.
func (c *GoogleAdsClient) ensureAccessToken() (string, error) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiresAt.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.GoogleAds.ClientID)
	form.Set("client_secret", c.cfg.GoogleAds.ClientSecret)
	form.Set("refresh_token", c.cfg.GoogleAds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	resp, err := c.httpClient.Post(
		oauthTokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		logrus.WithError(err).Error("Erro ao renovar o access token do Google Ads")
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", parseAPIError(resp.StatusCode, body)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", err
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	logrus.WithField("expires_at", c.tokenExpiresAt.Format(time.RFC3339)).
		Debug("Access token do Google Ads renovado")

	return c.accessToken, nil
}

func parseAPIError(status int, body []byte) *adsdomain.APIError {
	var errResp adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return &adsdomain.APIError{Status: status, Message: errResp.Error.Message}
	}
	return &adsdomain.APIError{Status: status, Message: string(body)}
}
