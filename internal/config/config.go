package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	HubSpot    HubSpot    `mapstructure:",squash"`
	DealStatus DealStatus `mapstructure:",squash"`
	TokenCheck TokenCheck `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type HubSpot struct {
	BaseURL     string        `mapstructure:"hubspot_base_url"`
	AccessToken string        `mapstructure:"hubspot_access_token"`
	Timeout     time.Duration `mapstructure:"hubspot_timeout"`
}

// DealStatus configura o endpoint de status de negócios.
// Variant "full" busca associações na mesma chamada, inclui o responsável
// pela empresa e envia o Cache-Control; "basic" faz a chamada de associação
// separada e responde apenas deal e company.
type DealStatus struct {
	Variant      string `mapstructure:"deal_status_variant"`
	CacheControl string `mapstructure:"deal_status_cache_control"`
}

type TokenCheck struct {
	CronSchedule   string `mapstructure:"token_check_cron"`
	TimeoutSeconds int    `mapstructure:"token_check_timeout_seconds"`
	Enabled        bool   `mapstructure:"token_check_enabled"`
}

const (
	VariantFull  = "full"
	VariantBasic = "basic"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("HUBSPOT_BASE_URL", "https://api.hubapi.com")
	viper.SetDefault("HUBSPOT_ACCESS_TOKEN", "")
	viper.SetDefault("HUBSPOT_TIMEOUT", "30s")

	viper.SetDefault("DEAL_STATUS_VARIANT", VariantFull)
	viper.SetDefault("DEAL_STATUS_CACHE_CONTROL", "s-maxage=60, stale-while-revalidate=30")

	// Verificação periódica do token do HubSpot
	viper.SetDefault("TOKEN_CHECK_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("TOKEN_CHECK_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TOKEN_CHECK_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
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

	config.normalize()

	if config.HubSpot.AccessToken == "" {
		logrus.Warn("HUBSPOT_ACCESS_TOKEN não configurado, as chamadas ao HubSpot vão falhar com 401")
	}

	return config, nil
}

// normalize ajusta valores que chegam do ambiente com espaços ou em branco.
func (c *Config) normalize() {
	c.HubSpot.BaseURL = strings.TrimRight(c.HubSpot.BaseURL, "/")

	variant := strings.ToLower(strings.TrimSpace(c.DealStatus.Variant))
	if variant != VariantBasic {
		variant = VariantFull
	}
	c.DealStatus.Variant = variant

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins
}

// IncludeOwner indica se a variante configurada busca o responsável da empresa.
func (d DealStatus) IncludeOwner() bool {
	return d.Variant != VariantBasic
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
