package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/service"
)

// ServiceName is the name under which the invoice API reports its health,
// next to the server-wide empty name.
const ServiceName = "goinvoice.InvoiceAPI"

const defaultProbeInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 protocol. The reported status
// follows [service.HealthService.Check], refreshed by [Handler.Watch].
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health holds the serving status returned to gRPC health clients.
	health *health.Server

	// probeInterval is the period between two database probes.
	probeInterval time.Duration

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Until the first probe both names report NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:      services,
		health:        healthServer,
		probeInterval: defaultProbeInterval,
		logger:        logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe checks the database once and publishes the result.
func (h *Handler) Probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Watch probes immediately and then every probe interval until ctx is
// done. On return every name is switched to NOT_SERVING for good.
func (h *Handler) Watch(ctx context.Context) {
	h.Probe(ctx)

	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}
