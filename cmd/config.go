package cmd

import (
	"github.com/signflow/document-backend/infra"
	"github.com/signflow/document-backend/utils"

	"github.com/cockroachdb/errors"
)

type CompiledConfig struct {
	Version string
}

type ServerConfig struct {
	env           string
	loggingFormat string
	sentryDsn     string
	metrics       infra.MetricsConfig
}

func serverConfigFromEnv() ServerConfig {
	return ServerConfig{
		env:           utils.GetEnv("ENV", "development"),
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		metrics: infra.MetricsConfig{
			PushgatewayUrl: utils.GetEnv("PROMETHEUS_PUSHGATEWAY_URL", ""),
			JobName:        utils.GetEnv("PROMETHEUS_JOB_NAME", "document-backend"),
		},
	}
}

func (config ServerConfig) Validate() error {
	if config.loggingFormat != "text" && config.loggingFormat != "json" {
		return errors.Newf("LOGGING_FORMAT must be text or json, got %q", config.loggingFormat)
	}
	if config.metrics.PushgatewayUrl != "" && config.metrics.JobName == "" {
		return errors.New("PROMETHEUS_JOB_NAME is required when a pushgateway is configured")
	}
	return nil
}

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:    utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:            utils.GetEnv("PG_DATABASE", "documents"),
		DbConnectWithSocket: utils.GetEnv("PG_CONNECT_WITH_SOCKET", false),
		Hostname:            utils.GetEnv("PG_HOSTNAME", ""),
		Password:            utils.GetEnv("PG_PASSWORD", ""),
		Port:                utils.GetEnv("PG_PORT", "5432"),
		User:                utils.GetEnv("PG_USER", ""),
		MaxPoolConnections:  utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:             utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}
