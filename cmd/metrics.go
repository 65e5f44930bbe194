package cmd

import (
	"context"

	"github.com/signflow/document-backend/infra"
	"github.com/signflow/document-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// pushMetrics sends the metrics of a one shot command to the pushgateway, when one is configured.
func pushMetrics(ctx context.Context, config infra.MetricsConfig) {
	if config.PushgatewayUrl == "" {
		return
	}

	err := push.New(config.PushgatewayUrl, config.JobName).
		Gatherer(prometheus.DefaultGatherer).
		PushContext(ctx)
	if err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "error pushing metrics"))
	}
}
