package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"

	"github.com/benbjohnson/clock"
)

// localHTTPPublisher posts events to a local endpoint in the Pub/Sub push format
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// PushMessage is the body Google Pub/Sub sends to push subscriptions
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher for development
func NewLocalHTTPPublisher(endpoint string, clk clock.Clock, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		clock:      clk,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishStoreDetected(ctx context.Context, event *entity.StoreDetectedEvent) error {
	msg, err := storeDetectedMessage(event)
	if err != nil {
		return err
	}

	return p.post(ctx, msg)
}

func (p *localHTTPPublisher) PublishReminderMatched(ctx context.Context, event *entity.ReminderMatchedEvent) error {
	msg, err := reminderMatchedMessage(event)
	if err != nil {
		return err
	}

	return p.post(ctx, msg)
}

func (p *localHTTPPublisher) post(ctx context.Context, msg *message) error {
	push := PushMessage{Subscription: "projects/local/subscriptions/shopradar-events"}
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = msg.id
	push.Message.PublishTime = p.clock.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("event_type", msg.attributes["event_type"]),
		slog.String("event_id", msg.id),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
