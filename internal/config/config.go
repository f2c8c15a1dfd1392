package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DataTypes aceitos na variável DATA_TYPES
const (
	DataTypeGoogleAds       = "googleAds"
	DataTypeUserConversions = "userConversions"
	DataTypeHubSpotForms    = "hubspotForms"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	GoogleAds GoogleAds `mapstructure:",squash"`
	HubSpot   HubSpot   `mapstructure:",squash"`
	Sheets    Sheets    `mapstructure:",squash"`
	Sync      Sync      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type GoogleAds struct {
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	APIVersion      string `mapstructure:"google_ads_api_version"`
	IncludePaused   bool   `mapstructure:"google_ads_include_paused"`
}

// Complete indica se todas as credenciais obrigatórias foram informadas
func (g GoogleAds) Complete() bool {
	return g.DeveloperToken != "" &&
		g.ClientID != "" &&
		g.ClientSecret != "" &&
		g.RefreshToken != "" &&
		g.CustomerID != ""
}

type HubSpot struct {
	PrivateAppToken   string `mapstructure:"hubspot_private_app_token"`
	ClosedWonStageID  string `mapstructure:"hubspot_deal_stage_closed_won"`
	ClosedLostStageID string `mapstructure:"hubspot_deal_stage_closed_lost"`
}

func (h HubSpot) Complete() bool {
	return h.PrivateAppToken != ""
}

type Sheets struct {
	ClientID         string `mapstructure:"google_sheets_client_id"`
	ClientSecret     string `mapstructure:"google_sheets_client_secret"`
	RefreshToken     string `mapstructure:"google_sheets_refresh_token"`
	SpreadsheetID    string `mapstructure:"google_sheets_id"`
	DefaultSheetName string `mapstructure:"default_sheet_name"`
}

func (s Sheets) Complete() bool {
	return s.ClientID != "" && s.ClientSecret != "" && s.RefreshToken != "" && s.SpreadsheetID != ""
}

type Sync struct {
	CronSchedule         string   `mapstructure:"sync_cron"`
	Enabled              bool     `mapstructure:"sync_enabled"`
	DataTypes            []string `mapstructure:"data_types"`
	LookbackDays         int      `mapstructure:"sync_lookback_days"`
	YearToDate           bool     `mapstructure:"sync_year_to_date"`
	PageDelayMs          int      `mapstructure:"sync_page_delay_ms"`
	MaxContacts          int      `mapstructure:"sync_max_contacts"`
	MaxConcurrentLookups int      `mapstructure:"sync_max_concurrent_lookups"`
	MaxRetries           int      `mapstructure:"sync_max_retries"`
	BaseBackoffMs        int      `mapstructure:"sync_base_backoff_ms"`
	OnlyWithDeals        bool     `mapstructure:"sync_only_contacts_with_deals"`
}

// HasDataType verifica se um tipo de dado foi selecionado em DATA_TYPES
func (s Sync) HasDataType(dataType string) bool {
	for _, dt := range s.DataTypes {
		if strings.TrimSpace(dt) == dataType {
			return true
		}
	}
	return false
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_INCLUDE_PAUSED", false)

	// Estágios conhecidos do funil; portais com estágios customizados
	// sobrescrevem com o ID numérico do estágio
	viper.SetDefault("HUBSPOT_DEAL_STAGE_CLOSED_WON", "closedwon")
	viper.SetDefault("HUBSPOT_DEAL_STAGE_CLOSED_LOST", "closedlost")

	viper.SetDefault("DEFAULT_SHEET_NAME", "Google Ads Campaigns")

	// Defaults para a sincronização
	viper.SetDefault("SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("SYNC_ENABLED", false)
	viper.SetDefault("DATA_TYPES", "googleAds,userConversions,hubspotForms")
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("SYNC_YEAR_TO_DATE", false)
	viper.SetDefault("SYNC_PAGE_DELAY_MS", 500) // Atraso entre páginas de busca no CRM
	viper.SetDefault("SYNC_MAX_CONTACTS", 10000)
	viper.SetDefault("SYNC_MAX_CONCURRENT_LOOKUPS", 10)
	viper.SetDefault("SYNC_MAX_RETRIES", 3)
	viper.SetDefault("SYNC_BASE_BACKOFF_MS", 1000)
	viper.SetDefault("SYNC_ONLY_CONTACTS_WITH_DEALS", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	reportMissingCredentials(config)

	return config, nil
}

// reportMissingCredentials loga os grupos de credenciais ausentes. Um grupo
// incompleto não derruba a aplicação: o cliente correspondente fica
// desabilitado e o pipeline segue em modo degradado.
func reportMissingCredentials(cfg *Config) {
	if !cfg.GoogleAds.Complete() {
		logrus.Warn("Credenciais do Google Ads incompletas. Cliente do Google Ads não será inicializado.")
	}
	if !cfg.HubSpot.Complete() {
		logrus.Warn("HUBSPOT_PRIVATE_APP_TOKEN ausente. Cliente HubSpot não será inicializado.")
	}
	if !cfg.Sheets.Complete() {
		logrus.Warn("Credenciais do Google Sheets incompletas. Escrita na planilha será pulada.")
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
