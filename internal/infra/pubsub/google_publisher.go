package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"megaskyshop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const defaultPublishTimeout = 10 * time.Second

// googlePublisher sends one message per finished run. Messages of the same
// dataset share an ordering key so subscribers see runs in start order.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	timeout   time.Duration
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist, so a
// misconfigured run is rejected before any row is read.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := topicName(projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	publisher := client.Publisher(topic)
	publisher.EnableMessageOrdering = true

	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	logger.Info("Run events go to Google Pub/Sub",
		slog.String("topic", topic),
		slog.Duration("publish_timeout", timeout),
	)

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishImportCompleted(ctx context.Context, event *service.ImportCompletedEvent) error {
	msg, err := newRunMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// The CLI exits right after the run, so wait for the server ack.
	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "failed to publish run %s", event.RunID)
	}

	p.logger.Debug("Run event acknowledged",
		slog.String("run_id", event.RunID),
		slog.String("dataset", event.Dataset),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

func newRunMessage(event *service.ImportCompletedEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode run event")
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.Dataset,
	}, nil
}

func topicName(projectID, topicID string) string {
	return "projects/" + projectID + "/topics/" + topicID
}
