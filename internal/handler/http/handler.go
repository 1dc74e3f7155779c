package http

import (
	"time"

	"github.com/MKhiriev/go-invoice/internal/config"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/service"
)

const defaultMetricsPath = "/metrics"

type Handler struct {
	services *service.Services
	metrics  *metrics

	requestTimeout time.Duration
	metricsPath    string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	metricsPath := cfg.MetricsPath
	if metricsPath == "" {
		metricsPath = defaultMetricsPath
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        newMetrics(),
		requestTimeout: cfg.RequestTimeout,
		metricsPath:    metricsPath,
		logger:         logger,
	}
}
