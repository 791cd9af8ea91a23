package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/snmpctl/internal/agent"
	"github.com/danmuck/snmpctl/internal/config"
	"github.com/danmuck/snmpctl/internal/mib"
	"github.com/danmuck/snmpctl/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "agentctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to agent TOML config")
	port := flag.Int("port", 0, "listening port (overrides config)")
	host := flag.String("host", "", "listening host (overrides config)")
	metricsAddr := flag.String("metrics", "", "address for the /metrics endpoint (overrides config)")
	flag.Parse()

	observability.InitLogger("agentctl")

	cfg := config.DefaultAgentConfig()
	if *configPath != "" {
		loaded, err := config.LoadAgentConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if err := config.ValidateAgentConfig(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		observability.RegisterMetrics()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("metrics endpoint failed")
			}
		}()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics endpoint up")
	}

	store := mib.NewInmemoryStore(mib.DefaultEntries())
	a := agent.New(cfg, store)
	return a.Serve(ctx)
}
