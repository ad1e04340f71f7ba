package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"megaskyshop/config"
	"megaskyshop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ImportCompletedEvent {
	started := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	return &service.ImportCompletedEvent{
		RunID:      "0b7c5a7e-3c1e-4a53-9d5c-2f6f0e0f9a11",
		Dataset:    "orders",
		Source:     "data/orders.csv",
		DryRun:     true,
		Imported:   8,
		Failed:     2,
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
	}
}

func TestLocalHTTPPublisher_PublishImportCompleted(t *testing.T) {
	var received pushEnvelope
	var runHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runHeader = r.Header.Get("X-Run-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "import-runs", discardLogger())
	require.NoError(t, publisher.PublishImportCompleted(context.Background(), testEvent()))

	assert.Equal(t, "0b7c5a7e-3c1e-4a53-9d5c-2f6f0e0f9a11", runHeader)
	assert.Equal(t, "projects/local/subscriptions/import-runs-sub", received.Subscription)
	assert.Equal(t, map[string]string{
		"run_id":  "0b7c5a7e-3c1e-4a53-9d5c-2f6f0e0f9a11",
		"dataset": "orders",
		"dry_run": "true",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.ImportCompletedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, 8, event.Imported)
	assert.Equal(t, 2, event.Failed)
	assert.True(t, event.DryRun)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", discardLogger())
	err := publisher.PublishImportCompleted(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewPushEnvelope(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 10, 0, time.FixedZone("UTC+8", 8*3600))

	body, err := newPushEnvelope(testEvent(), "projects/local/subscriptions/import-runs-sub", now)
	require.NoError(t, err)

	var envelope pushEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "0b7c5a7e-3c1e-4a53-9d5c-2f6f0e0f9a11", envelope.Message.MessageID)
	assert.Equal(t, "2026-03-03T21:06:10Z", envelope.Message.PublishTime)
	assert.Equal(t, "orders", envelope.Message.Attributes["dataset"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8085"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "runs"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)

			lc.RequireStart()
			lc.RequireStop()
		})
	}
}

func TestDiscardPublisher(t *testing.T) {
	publisher := discardPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishImportCompleted(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewRunMessage(t *testing.T) {
	msg, err := newRunMessage(testEvent())
	require.NoError(t, err)

	assert.Equal(t, "orders", msg.OrderingKey)
	assert.Equal(t, "true", msg.Attributes["dry_run"])

	var event service.ImportCompletedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, "data/orders.csv", event.Source)
	assert.Equal(t, 3*time.Second, event.FinishedAt.Sub(event.StartedAt))
}

func TestTopicName(t *testing.T) {
	assert.Equal(t, "projects/shop-prod/topics/import-runs", topicName("shop-prod", "import-runs"))
}
