package ingestion

import (
	"context"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// subackFailure is the MQTT 3.1.1 SUBACK return code for a refused filter.
const subackFailure = 0x80

// MQTTOptions configures the paho-backed transport.
type MQTTOptions struct {
	BrokerURL         string
	ClientID          string
	Username          string
	Password          string
	QoS               byte
	ConnectTimeout    time.Duration
	DisconnectQuiesce time.Duration
}

// MQTTTransport implements Transport over an MQTT 3.1.1 broker.
// The paho client's own reconnect logic is disabled; Manager owns retries.
type MQTTTransport struct {
	opts   MQTTOptions
	client mqtt.Client

	mu     sync.Mutex
	onLost func(error)
}

// NewMQTTTransport builds the client without connecting.
func NewMQTTTransport(opts MQTTOptions) *MQTTTransport {
	t := &MQTTTransport{opts: opts}

	co := mqtt.NewClientOptions().
		AddBroker(opts.BrokerURL).
		SetClientID(opts.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(false).
		SetConnectRetry(false).
		SetOrderMatters(true).
		SetConnectTimeout(opts.ConnectTimeout).
		SetConnectionLostHandler(t.connectionLost)
	if opts.Username != "" {
		co.SetUsername(opts.Username)
		co.SetPassword(opts.Password)
	}

	t.client = mqtt.NewClient(co)
	return t
}

// Connect dials the broker and waits for CONNACK.
func (t *MQTTTransport) Connect(ctx context.Context, onLost func(error)) error {
	t.mu.Lock()
	t.onLost = onLost
	t.mu.Unlock()

	if err := waitToken(ctx, t.client.Connect()); err != nil {
		return fmt.Errorf("connect to %s: %w", t.opts.BrokerURL, err)
	}
	return nil
}

// Subscribe subscribes to every topic in one SUBSCRIBE packet and waits for SUBACK.
func (t *MQTTTransport) Subscribe(ctx context.Context, topics []string, handler MessageHandler) error {
	filters := make(map[string]byte, len(topics))
	for _, topic := range topics {
		filters[topic] = t.opts.QoS
	}

	tok := t.client.SubscribeMultiple(filters, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	if err := waitToken(ctx, tok); err != nil {
		return fmt.Errorf("subscribe %v: %w", topics, err)
	}

	if st, ok := tok.(*mqtt.SubscribeToken); ok {
		for topic, code := range st.Result() {
			if code == subackFailure {
				return fmt.Errorf("broker refused subscription to %q", topic)
			}
		}
	}
	return nil
}

// Disconnect sends DISCONNECT after letting in-flight work drain for the
// configured quiesce period.
func (t *MQTTTransport) Disconnect() {
	t.mu.Lock()
	t.onLost = nil
	t.mu.Unlock()

	if t.client.IsConnectionOpen() {
		t.client.Disconnect(uint(t.opts.DisconnectQuiesce.Milliseconds()))
	}
}

func (t *MQTTTransport) connectionLost(_ mqtt.Client, err error) {
	t.mu.Lock()
	onLost := t.onLost
	t.onLost = nil
	t.mu.Unlock()

	if onLost != nil {
		onLost(err)
	}
}

func waitToken(ctx context.Context, tok mqtt.Token) error {
	select {
	case <-tok.Done():
		return tok.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
