package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NOTIFY_"

// Config represents the top-level application config.
type Config struct {
	Server ServerConfig `koanf:"server" yaml:"server"`
	Bus    BusConfig    `koanf:"bus" yaml:"bus"`
	Schema SchemaConfig `koanf:"schema" yaml:"schema"`
	Stats  StatsConfig  `koanf:"stats" yaml:"stats"`
	Log    LogConfig    `koanf:"log" yaml:"log"`
}

type ServerConfig struct {
	Port int    `koanf:"port" yaml:"port"`
	Host string `koanf:"host" yaml:"host"`
	Mode string `koanf:"mode" yaml:"mode"` // debug | release
}

type BusConfig struct {
	BrokerURL         string        `koanf:"broker_url" yaml:"broker_url"`
	ClientID          string        `koanf:"client_id" yaml:"client_id"` // empty: generated per process
	Username          string        `koanf:"username" yaml:"username"`
	Password          string        `koanf:"password" yaml:"-"`
	UserTopic         string        `koanf:"user_topic" yaml:"user_topic"`
	AckTopic          string        `koanf:"ack_topic" yaml:"ack_topic"`
	QoS               int           `koanf:"qos" yaml:"qos"`
	ReconnectInterval time.Duration `koanf:"reconnect_interval" yaml:"reconnect_interval"`
	ConnectTimeout    time.Duration `koanf:"connect_timeout" yaml:"connect_timeout"`
	DisconnectQuiesce time.Duration `koanf:"disconnect_quiesce" yaml:"disconnect_quiesce"`
}

type SchemaConfig struct {
	Strict bool `koanf:"strict" yaml:"strict"`
}

type StatsConfig struct {
	ReportInterval time.Duration `koanf:"report_interval" yaml:"report_interval"` // 0 disables
}

type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"` // text | json
}

// Addr returns the HTTP listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var brokerSchemes = map[string]bool{
	"mqtt": true, "mqtts": true, "tcp": true, "ssl": true, "tls": true, "ws": true, "wss": true,
}

// legacyEnv maps un-prefixed deployment variables onto config keys.
var legacyEnv = map[string]string{
	"HOST":            "server.host",
	"PORT":            "server.port",
	"MQTT_URL":        "bus.broker_url",
	"MQTT_USER_TOPIC": "bus.user_topic",
	"MQTT_ACK_TOPIC":  "bus.ack_topic",
	"LOG_LEVEL":       "log.level",
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Bus.BrokerURL) == "" {
		return fmt.Errorf("bus.broker_url is required")
	}
	u, err := url.Parse(c.Bus.BrokerURL)
	if err != nil {
		return fmt.Errorf("invalid bus.broker_url %q: %w", c.Bus.BrokerURL, err)
	}
	if !brokerSchemes[u.Scheme] {
		return fmt.Errorf("unsupported bus.broker_url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("bus.broker_url %q has no host", c.Bus.BrokerURL)
	}

	for key, topic := range map[string]string{"bus.user_topic": c.Bus.UserTopic, "bus.ack_topic": c.Bus.AckTopic} {
		if strings.TrimSpace(topic) == "" {
			return fmt.Errorf("%s is required", key)
		}
		if strings.ContainsAny(topic, "+#") {
			return fmt.Errorf("%s %q must not contain wildcards", key, topic)
		}
	}
	if c.Bus.UserTopic == c.Bus.AckTopic {
		return fmt.Errorf("bus.user_topic and bus.ack_topic must differ (both %q)", c.Bus.UserTopic)
	}
	if c.Bus.QoS < 0 || c.Bus.QoS > 2 {
		return fmt.Errorf("invalid bus.qos %d (must be 0-2)", c.Bus.QoS)
	}
	if c.Bus.ReconnectInterval <= 0 {
		return fmt.Errorf("bus.reconnect_interval must be > 0")
	}
	if c.Bus.ConnectTimeout <= 0 {
		return fmt.Errorf("bus.connect_timeout must be > 0")
	}
	if c.Bus.DisconnectQuiesce < 0 {
		return fmt.Errorf("bus.disconnect_quiesce must be >= 0")
	}

	if c.Stats.ReportInterval < 0 {
		return fmt.Errorf("stats.report_interval must be >= 0")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q (must be text or json)", c.Log.Format)
	}

	return nil
}

// Load parses config from defaults, an optional YAML file and the
// environment, then validates it. Later sources override earlier ones:
// defaults, file, legacy env names, NOTIFY_-prefixed env.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":            9000,
		"server.host":            "0.0.0.0",
		"server.mode":            "release",
		"bus.broker_url":         "mqtt://localhost:1883",
		"bus.client_id":          "",
		"bus.username":           "",
		"bus.password":           "",
		"bus.user_topic":         "notification/user",
		"bus.ack_topic":          "notification/ack",
		"bus.qos":                1,
		"bus.reconnect_interval": "1s",
		"bus.connect_timeout":    "10s",
		"bus.disconnect_quiesce": "250ms",
		"schema.strict":          false,
		"stats.report_interval":  "1m",
		"log.level":              "info",
		"log.format":             "text",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnv[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// NOTIFY_BUS__BROKER_URL=... overrides bus.broker_url
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
