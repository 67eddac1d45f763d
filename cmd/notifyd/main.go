package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/notification-stats/internal/aggregation"
	"github.com/aevon-lab/notification-stats/internal/analytics"
	coreagg "github.com/aevon-lab/notification-stats/internal/core/aggregation"
	corecfg "github.com/aevon-lab/notification-stats/internal/core/config"
	"github.com/aevon-lab/notification-stats/internal/core/logging"
	"github.com/aevon-lab/notification-stats/internal/ingestion"
	"github.com/aevon-lab/notification-stats/internal/schema"
	"github.com/aevon-lab/notification-stats/internal/server"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective configuration as YAML and exit")
	flag.Parse()

	// 0. Bootstrap logger until config is known
	slog.SetDefault(logging.New(os.Stdout, "info", "text"))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *dumpConfig {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			slog.Error("Failed to render config", "error", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
		return
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format))

	clientID := cfg.Bus.ClientID
	if clientID == "" {
		clientID = "notifyd-" + uuid.NewString()
	}
	slog.Info("Loaded config",
		"addr", cfg.Server.Addr(),
		"broker", cfg.Bus.BrokerURL,
		"client_id", clientID,
		"user_topic", cfg.Bus.UserTopic,
		"ack_topic", cfg.Bus.AckTopic,
		"strict", cfg.Schema.Strict,
	)

	// 2. Metrics registry and counters
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	stats := coreagg.NewStatsAggregator()
	registry.MustRegister(coreagg.NewStatsCollector(stats))

	// 3. Ingestion pipeline
	topics := ingestion.Topics{User: cfg.Bus.UserTopic, Ack: cfg.Bus.AckTopic}
	pipeline, err := ingestion.NewPipeline(topics, schema.NewValidator(cfg.Schema.Strict), stats, registry)
	if err != nil {
		slog.Error("Failed to initialize ingestion pipeline", "error", err)
		os.Exit(1)
	}

	// 4. Bus connection
	transport := ingestion.NewMQTTTransport(ingestion.MQTTOptions{
		BrokerURL:         cfg.Bus.BrokerURL,
		ClientID:          clientID,
		Username:          cfg.Bus.Username,
		Password:          cfg.Bus.Password,
		QoS:               byte(cfg.Bus.QoS),
		ConnectTimeout:    cfg.Bus.ConnectTimeout,
		DisconnectQuiesce: cfg.Bus.DisconnectQuiesce,
	})
	manager := ingestion.NewManager(transport, pipeline, ingestion.ManagerOptions{
		Topics:            topics,
		ReconnectInterval: cfg.Bus.ReconnectInterval,
	})
	ingestionSvc := ingestion.NewService(manager, stats)

	// 5. HTTP surface
	srv := server.New(cfg.Server.Addr(), manager, registry, cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)
	analytics.NewService().RegisterRoutes(srv.Engine)

	reporter := aggregation.NewReporter(cfg.Stats.ReportInterval, stats, slog.Default())

	// 6. Start Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return ingestionSvc.Run(gctx) })
	g.Go(func() error { return reporter.Start(gctx) })

	if err := g.Wait(); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
