package sheetsclient

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
	sheetsdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
)

const (
	baseURL       = "https://sheets.googleapis.com/v4/spreadsheets"
	oauthTokenURL = "https://oauth2.googleapis.com/token"
)

type Client interface {
	ClearRange(rangeRef string) error
	UpdateRange(rangeRef string, values [][]interface{}) error
}

type SheetsClient struct {
	httpClient *http.Client
	cfg        *config.Config

	tokenMutex     sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg: cfg,
	}
}

// ClearRange limpa todos os valores do intervalo informado.
func (c *SheetsClient) ClearRange(rangeRef string) error {
	endpoint := fmt.Sprintf(
		"%s/%s/values/%s:clear",
		baseURL,
		c.cfg.Sheets.SpreadsheetID,
		url.PathEscape(rangeRef),
	)

	var resp sheetsdomain.ClearResponse
	if err := c.doRequest(http.MethodPost, endpoint, nil, &resp); err != nil {
		return err
	}

	logrus.WithField("cleared_range", resp.ClearedRange).Debug("Intervalo da planilha limpo")

	return nil
}

// UpdateRange escreve os valores a partir do início do intervalo informado.
// USER_ENTERED faz a planilha interpretar números e datas como se tivessem
// sido digitados.
func (c *SheetsClient) UpdateRange(rangeRef string, values [][]interface{}) error {
	endpoint := fmt.Sprintf(
		"%s/%s/values/%s?valueInputOption=USER_ENTERED",
		baseURL,
		c.cfg.Sheets.SpreadsheetID,
		url.PathEscape(rangeRef),
	)

	payload := &sheetsdomain.UpdateRequest{
		Range:          rangeRef,
		MajorDimension: "ROWS",
		Values:         values,
	}

	var resp sheetsdomain.UpdateResponse
	if err := c.doRequest(http.MethodPut, endpoint, payload, &resp); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"updated_range": resp.UpdatedRange,
		"updated_rows":  resp.UpdatedRows,
	}).Debug("Intervalo da planilha atualizado")

	return nil
}

func (c *SheetsClient) doRequest(method, endpoint string, payload interface{}, out interface{}) error {
	token, err := c.ensureAccessToken()
	if err != nil {
		return err
	}

	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao codificar o corpo da requisição: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token)

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
		return err
	}

	if resp.StatusCode != http.StatusOK {
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

// ensureAccessToken devolve um access token válido, renovando via refresh
// token quando o atual expirou.
func (c *SheetsClient) ensureAccessToken() (string, error) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiresAt.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.Sheets.ClientID)
	form.Set("client_secret", c.cfg.Sheets.ClientSecret)
	form.Set("refresh_token", c.cfg.Sheets.RefreshToken)
	form.Set("grant_type", "refresh_token")

	resp, err := c.httpClient.Post(
		oauthTokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		logrus.WithError(err).Error("Erro ao renovar o access token do Google Sheets")
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

	return c.accessToken, nil
}

func parseAPIError(status int, body []byte) *sheetsdomain.APIError {
	var errResp sheetsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return &sheetsdomain.APIError{Status: status, Message: errResp.Error.Message}
	}
	return &sheetsdomain.APIError{Status: status, Message: string(body)}
}
