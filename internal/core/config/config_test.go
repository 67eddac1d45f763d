package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so host settings cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range legacyEnv {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, envPrefix) {
			name := kv[:strings.IndexByte(kv, '=')]
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notifyd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	require.Equal(t, "release", cfg.Server.Mode)
	require.Equal(t, "mqtt://localhost:1883", cfg.Bus.BrokerURL)
	require.Equal(t, "notification/user", cfg.Bus.UserTopic)
	require.Equal(t, "notification/ack", cfg.Bus.AckTopic)
	require.Equal(t, 1, cfg.Bus.QoS)
	require.Equal(t, time.Second, cfg.Bus.ReconnectInterval)
	require.Equal(t, 10*time.Second, cfg.Bus.ConnectTimeout)
	require.Equal(t, 250*time.Millisecond, cfg.Bus.DisconnectQuiesce)
	require.Empty(t, cfg.Bus.ClientID)
	require.False(t, cfg.Schema.Strict)
	require.Equal(t, time.Minute, cfg.Stats.ReportInterval)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 8081
  host: "127.0.0.1"
bus:
  broker_url: "tcp://broker:1883"
  user_topic: "prod/notification/user"
  ack_topic: "prod/notification/ack"
  reconnect_interval: "2500ms"
schema:
  strict: true
log:
  format: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
	require.Equal(t, "tcp://broker:1883", cfg.Bus.BrokerURL)
	require.Equal(t, "prod/notification/user", cfg.Bus.UserTopic)
	require.Equal(t, "prod/notification/ack", cfg.Bus.AckTopic)
	require.Equal(t, 2500*time.Millisecond, cfg.Bus.ReconnectInterval)
	require.True(t, cfg.Schema.Strict)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 8081
bus:
  user_topic: "from/file"
`)
	t.Setenv("PORT", "7000")
	t.Setenv("MQTT_URL", "mqtt://legacy:1883")
	t.Setenv("MQTT_ACK_TOPIC", "legacy/ack")
	t.Setenv("NOTIFY_BUS__BROKER_URL", "mqtts://secure:8883")
	t.Setenv("NOTIFY_BUS__RECONNECT_INTERVAL", "3s")
	t.Setenv("NOTIFY_STATS__REPORT_INTERVAL", "0s")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Server.Port)
	require.Equal(t, "mqtts://secure:8883", cfg.Bus.BrokerURL, "prefixed env wins over legacy env")
	require.Equal(t, "from/file", cfg.Bus.UserTopic)
	require.Equal(t, "legacy/ack", cfg.Bus.AckTopic)
	require.Equal(t, 3*time.Second, cfg.Bus.ReconnectInterval)
	require.Zero(t, cfg.Stats.ReportInterval)
}

func TestLoad_MissingFileFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "failed to load config file")
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "port", yaml: "server:\n  port: -1\n", wantErr: "invalid server.port"},
		{name: "mode", yaml: "server:\n  mode: \"prod\"\n", wantErr: "invalid server.mode"},
		{name: "scheme", yaml: "bus:\n  broker_url: \"http://localhost:1883\"\n", wantErr: "unsupported bus.broker_url scheme"},
		{name: "no host", yaml: "bus:\n  broker_url: \"mqtt://\"\n", wantErr: "has no host"},
		{name: "blank topic", yaml: "bus:\n  ack_topic: \" \"\n", wantErr: "bus.ack_topic is required"},
		{name: "wildcard", yaml: "bus:\n  user_topic: \"notification/#\"\n", wantErr: "must not contain wildcards"},
		{name: "same topics", yaml: "bus:\n  user_topic: \"x\"\n  ack_topic: \"x\"\n", wantErr: "must differ"},
		{name: "qos", yaml: "bus:\n  qos: 3\n", wantErr: "invalid bus.qos"},
		{name: "reconnect", yaml: "bus:\n  reconnect_interval: \"0s\"\n", wantErr: "bus.reconnect_interval must be > 0"},
		{name: "report interval", yaml: "stats:\n  report_interval: \"-1s\"\n", wantErr: "stats.report_interval must be >= 0"},
		{name: "log format", yaml: "log:\n  format: \"xml\"\n", wantErr: "invalid log.format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tc.yaml))
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
