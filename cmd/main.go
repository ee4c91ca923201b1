package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"

	"takeoutpages/internal/monitoring"
	"takeoutpages/internal/site"
	"takeoutpages/internal/upstream"
)

var (
	port        = flag.Int("port", 8080, "Site server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize upstream data API client
	client := upstream.NewClient(config.UpstreamURL, config.AdminToken)

	// Initialize metrics monitor
	monitor := monitoring.NewMonitor()

	// Initialize site server
	srv := site.NewServer(client, monitor)

	// Start metrics server
	if config.Metrics.Enabled {
		go startMetricsServer(*metricsPort)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: srv.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Site server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Starting site server on port %d", *port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Site server error: %v", err)
	}
}

func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file %s not found, using defaults", path)
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if token := os.Getenv("TAKEOUTPAGES_ADMIN_TOKEN"); token != "" {
		config.AdminToken = token
	}
	if url := os.Getenv("TAKEOUTPAGES_UPSTREAM_URL"); url != "" {
		config.UpstreamURL = url
	}

	return config, nil
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}

// Config represents the application configuration
type Config struct {
	UpstreamURL string `yaml:"upstream_url"`
	AdminToken  string `yaml:"admin_token"`
	LogLevel    string `yaml:"log_level"`
	Metrics     struct {
		Enabled bool   `yaml:"enabled"`
		Port    int    `yaml:"port"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

func defaultConfig() *Config {
	config := &Config{
		UpstreamURL: "http://localhost:8000",
		LogLevel:    "info",
	}
	config.Metrics.Enabled = true
	config.Metrics.Port = 9090
	config.Metrics.Path = "/metrics"
	return config
}
