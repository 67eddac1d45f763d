//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	v1 "github.com/aevon-lab/notification-stats/internal/api/v1"
	coreagg "github.com/aevon-lab/notification-stats/internal/core/aggregation"
	"github.com/aevon-lab/notification-stats/internal/ingestion"
	"github.com/aevon-lab/notification-stats/internal/schema"
	"github.com/aevon-lab/notification-stats/internal/server"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const defaultTestBroker = "tcp://localhost:1883"

type integrationHarness struct {
	baseURL    string
	client     *http.Client
	publisher  mqtt.Client
	topics     ingestion.Topics
	cancel     context.CancelFunc
	serverDone chan error
	busDone    chan error
}

func (h *integrationHarness) close(t *testing.T) {
	t.Helper()

	h.cancel()
	for name, done := range map[string]chan error{"server": h.serverDone, "bus": h.busDone} {
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Logf("%s shutdown timed out", name)
		}
	}
	h.publisher.Disconnect(250)
}

func TestBus_CountsValidEventsOnly(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	publish(t, h.publisher, h.topics.User, `{"notificationId":"n-1","requestId":"r-1","title":"Hi","body":"Hello","priority":"HIGH"}`)
	publish(t, h.publisher, h.topics.User, `{"notificationId":"n-2","requestId":"r-2","title":"Hi","body":"Hello","priority":"URGENT"}`)
	publish(t, h.publisher, h.topics.User, `not json`)
	publish(t, h.publisher, h.topics.Ack, `{"requestId":"r-1","notificationId":"n-1","acknowledgedAt":"2024-01-01T00:00:00Z","status":"DELIVERED"}`)
	publish(t, h.publisher, h.topics.Ack, `{"requestId":"r-1","notificationId":"n-1","acknowledgedAt":"2024-01-01T00:00:00Z","status":"FAILED","failureReason":"device offline"}`)

	want := v1.NotificationStats{Received: 1, AckDelivered: 1, AckFailed: 1}
	deadline := time.Now().Add(10 * time.Second)
	var got v1.NotificationStats
	for time.Now().Before(deadline) {
		got = getStats(t, h)
		if got == want {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("stats did not converge: got %+v want %+v", got, want)
}

func startHarness(t *testing.T) *integrationHarness {
	t.Helper()

	broker := os.Getenv("NOTIFY_TEST_BROKER")
	if broker == "" {
		broker = defaultTestBroker
	}

	// Unique topics keep parallel runs against a shared broker apart.
	prefix := "it-" + uuid.NewString()
	topics := ingestion.Topics{User: prefix + "/notification/user", Ack: prefix + "/notification/ack"}

	registry := prometheus.NewRegistry()
	stats := coreagg.NewStatsAggregator()
	registry.MustRegister(coreagg.NewStatsCollector(stats))

	pipeline, err := ingestion.NewPipeline(topics, schema.NewValidator(false), stats, registry)
	require.NoError(t, err)

	transport := ingestion.NewMQTTTransport(ingestion.MQTTOptions{
		BrokerURL:         broker,
		ClientID:          "notifyd-" + prefix,
		QoS:               1,
		ConnectTimeout:    5 * time.Second,
		DisconnectQuiesce: 100 * time.Millisecond,
	})
	manager := ingestion.NewManager(transport, pipeline, ingestion.ManagerOptions{
		Topics:            topics,
		ReconnectInterval: 200 * time.Millisecond,
	})
	ingestionSvc := ingestion.NewService(manager, stats)

	addr := fmt.Sprintf("127.0.0.1:%d", freePort(t))
	httpServer := server.New(addr, manager, registry, "release")
	ingestionSvc.RegisterRoutes(httpServer.Engine)

	ctx, cancel := context.WithCancel(context.Background())
	serverDone := make(chan error, 1)
	busDone := make(chan error, 1)
	go func() { serverDone <- httpServer.Run(ctx) }()
	go func() { busDone <- ingestionSvc.Run(ctx) }()

	baseURL := "http://" + addr
	waitForHealthy(t, baseURL)

	publisher := mqtt.NewClient(mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("publisher-" + prefix))
	tok := publisher.Connect()
	require.True(t, tok.WaitTimeout(5*time.Second), "publisher connect timed out")
	require.NoError(t, tok.Error())

	return &integrationHarness{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		publisher:  publisher,
		topics:     topics,
		cancel:     cancel,
		serverDone: serverDone,
		busDone:    busDone,
	}
}

// waitForHealthy doubles as the wait for SUBSCRIBED: /health is 503 until then.
func waitForHealthy(t *testing.T, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Fatalf("service did not become healthy at %s (is a broker running?)", baseURL)
}

func publish(t *testing.T, client mqtt.Client, topic, payload string) {
	t.Helper()

	tok := client.Publish(topic, 1, false, payload)
	require.True(t, tok.WaitTimeout(5*time.Second), "publish to %s timed out", topic)
	require.NoError(t, tok.Error())
}

func getStats(t *testing.T, h *integrationHarness) v1.NotificationStats {
	t.Helper()

	resp, err := h.client.Get(h.baseURL + "/v1/notifications/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var stats v1.NotificationStats
	require.NoError(t, json.Unmarshal(body, &stats))
	return stats
}

func freePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
