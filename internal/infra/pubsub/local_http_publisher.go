package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"megaskyshop/internal/domain/service"

	"github.com/pkg/errors"
)

const localPushTimeout = 30 * time.Second

// localHTTPPublisher posts run events to a development endpoint in the
// envelope Google Pub/Sub uses for push subscriptions, so the same handler
// serves both.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	client       *http.Client
	logger       *slog.Logger
}

// pushEnvelope is the body of a Pub/Sub push request.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	if topicID == "" {
		topicID = "import-runs"
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-sub",
		client:       &http.Client{Timeout: localPushTimeout},
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishImportCompleted(ctx context.Context, event *service.ImportCompletedEvent) error {
	body, err := newPushEnvelope(event, p.subscription, time.Now())
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Run-Id", event.RunID)

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push run %s", event.RunID)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d for run %s", resp.StatusCode, event.RunID)
	}

	p.logger.Debug("Run event pushed",
		slog.String("run_id", event.RunID),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}

// newPushEnvelope encodes event the way a push subscription delivers it:
// JSON payload, base64 encoded, run id as message id.
func newPushEnvelope(event *service.ImportCompletedEvent, subscription string, now time.Time) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode run event")
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: subscription,
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(payload),
			Attributes:  eventAttributes(event),
			MessageID:   event.RunID,
			PublishTime: now.UTC().Format(time.RFC3339),
		},
	})

	return body, errors.WithStack(err)
}
