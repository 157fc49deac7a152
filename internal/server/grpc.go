package server

import (
	"context"
	"net"
	"time"

	"github.com/akarpov/go-social-auth/internal/config"
	myGRPC "github.com/akarpov/go-social-auth/internal/handler/grpc"
	"github.com/akarpov/go-social-auth/internal/logger"

	"google.golang.org/grpc"
)

// healthProbeInterval is how often the storage backends are probed to
// refresh the gRPC health serving status.
const healthProbeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v\n", err)
	}
}

// watchServingStatus keeps the published health status current: it probes
// the storages immediately and then on every tick until ctx is cancelled.
func (g *grpcServer) watchServingStatus(ctx context.Context) {
	g.handler.UpdateServingStatus(ctx)

	ticker := time.NewTicker(healthProbeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.handler.UpdateServingStatus(ctx)
		}
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
