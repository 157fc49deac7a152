package handler

import (
	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/handler/grpc"
	"github.com/akarpov/go-social-auth/internal/handler/http"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/service"
	"github.com/akarpov/go-social-auth/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(storages, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
