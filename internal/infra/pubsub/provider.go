// Package pubsub announces finished import runs to downstream consumers.
package pubsub

import (
	"context"
	"log/slog"

	"megaskyshop/config"
	"megaskyshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Values of pubsub.provider. An empty provider disables events.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher for pubsub.provider and closes it
// when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Debug("Run events disabled")

		return discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Run events go to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.TopicID, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, cfg.PublishTimeout, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishImportCompleted(_ context.Context, event *service.ImportCompletedEvent) error {
	p.logger.Debug("Run event discarded", slog.String("run_id", event.RunID))

	return nil
}

func (discardPublisher) Close() error { return nil }

// eventAttributes lets subscriptions filter on dataset or skip dry runs.
func eventAttributes(event *service.ImportCompletedEvent) map[string]string {
	attributes := map[string]string{
		"run_id":  event.RunID,
		"dataset": event.Dataset,
	}
	if event.DryRun {
		attributes["dry_run"] = "true"
	}

	return attributes
}

//nolint:gochecknoglobals
var Module = fx.Provide(NewEventPublisher)
