package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/nais/liberator/pkg/conftools"
	"github.com/nais/lander/pkg/netlify"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Netlify struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type Config struct {
	CorsAllowedOrigins []string      `json:"cors-allowed-origins"`
	ListenAddress      string        `json:"listen-address"`
	LogFormat          string        `json:"log-format"`
	LogLevel           string        `json:"log-level"`
	MaxDeploysPerHour  int           `json:"max-deploys-per-hour"`
	MetricsPath        string        `json:"metrics-path"`
	Netlify            Netlify       `json:"netlify"`
	OtelCollectorURL   string        `json:"otel-collector-url"`
	RedisURL           string        `json:"redis-url"`
	ShutdownTimeout    time.Duration `json:"shutdown-timeout"`
	ThemesFile         string        `json:"themes-file"`
}

const (
	CorsAllowedOrigins = "cors-allowed-origins"
	ListenAddress      = "listen-address"
	LogFormat          = "log-format"
	LogLevel           = "log-level"
	MaxDeploysPerHour  = "max-deploys-per-hour"
	MetricsPath        = "metrics-path"
	NetlifyToken       = "netlify.token"
	NetlifyURL         = "netlify.url"
	OtelCollectorURL   = "otel-collector-url"
	RedisURL           = "redis-url"
	ShutdownTimeout    = "shutdown-timeout"
	ThemesFile         = "themes-file"
)

// Secrets are never printed.
var Secrets = []string{
	NetlifyToken,
	RedisURL,
}

func bindEnv() {
	viper.BindEnv(NetlifyToken, "NETLIFY_TOKEN")
	viper.BindEnv(NetlifyURL, "NETLIFY_URL")
	viper.BindEnv(MaxDeploysPerHour, "MAX_DEPLOYS_PER_HOUR")
	viper.BindEnv(ListenAddress, "LISTEN_ADDRESS")
	viper.BindEnv(RedisURL, "REDIS_URL")
	viper.BindEnv(OtelCollectorURL, "OTEL_EXPORTER_OTLP_ENDPOINT")
}

const DefaultEnvFile = ".env"

// LoadEnvFile reads variables from a dotenv file into the process environment.
// Variables already set are kept, and a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func Initialize() *Config {
	conftools.Initialize("lander")
	bindEnv()

	flag.String(ListenAddress, "0.0.0.0:5000", "IP:PORT")
	flag.String(LogFormat, "text", "Log format, either 'json' or 'text'.")
	flag.String(LogLevel, "info", "Logging verbosity level.")
	flag.String(MetricsPath, "/metrics", "HTTP endpoint for exposed metrics.")
	flag.Duration(ShutdownTimeout, 10*time.Second, "How long to wait for in-flight requests when shutting down.")

	flag.String(NetlifyToken, "", "Netlify personal access token.")
	flag.String(NetlifyURL, netlify.DefaultURL, "Base URL of the Netlify API.")
	flag.Int(MaxDeploysPerHour, 10, "Maximum number of deploys per client and hour.")

	flag.String(RedisURL, "", "Redis URL for sharing rate limits between replicas. Rate limits are kept in memory if empty.")
	flag.String(ThemesFile, "", "YAML file with additional theme presets.")
	flag.StringSlice(CorsAllowedOrigins, []string{"*"}, "Origins allowed to make cross-site requests, comma separated.")
	flag.String(OtelCollectorURL, "", "OpenTelemetry collector URL. Tracing is disabled if empty.")

	return &Config{}
}
