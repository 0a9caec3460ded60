package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectCallStored is the NATS subject announcing a persisted call.
const SubjectCallStored = "callsink.call.stored"

// CallStored is emitted after a webhook's record has been written, so
// downstream consumers (dashboards, dialer feedback loops) see new calls
// without polling the table.
type CallStored struct {
	DeliveryID        string `json:"delivery_id"`
	AgentID           string `json:"agent_id,omitempty"`
	ConversationID    string `json:"conversation_id,omitempty"`
	VoicemailDetected bool   `json:"voicemail_detected"`
	StoredAt          string `json:"stored_at"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

func (p *Publisher) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	p.conn.Close()
}

// NewCallStored builds the announcement for one stored record.
func NewCallStored(deliveryID string, agentID, conversationID *string, voicemail bool) CallStored {
	ev := CallStored{
		DeliveryID:        deliveryID,
		VoicemailDetected: voicemail,
		StoredAt:          time.Now().UTC().Format(time.RFC3339),
	}
	if agentID != nil {
		ev.AgentID = *agentID
	}
	if conversationID != nil {
		ev.ConversationID = *conversationID
	}
	return ev
}
