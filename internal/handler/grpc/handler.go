// Package grpc implements the gRPC transport layer of the application.
// It currently exposes only the standard gRPC health checking protocol,
// backed by liveness probes of the storage backends.
package grpc

import (
	"context"
	"time"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler. It owns the health server and
// keeps a reference to the storages whose liveness it reports.
type Handler struct {
	storages *store.Storages
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting the liveness of the given
// storages via the standard gRPC health checking protocol.
func NewHandler(storages *store.Storages, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		storages: storages,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to the given gRPC server.
func (h *Handler) Register(server *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(server, h.health)
}

// UpdateServingStatus probes the storage backends once and publishes the
// result to the health server. Intended to be called periodically by the
// server loop.
func (h *Handler) UpdateServingStatus(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := h.storages.Ping(probeCtx); err != nil {
		h.logger.Err(err).Msg("storage liveness probe failed")
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
}

// Shutdown marks all services NOT_SERVING so that load balancers drain
// traffic before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
