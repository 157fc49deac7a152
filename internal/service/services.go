package service

import (
	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(registry ValidatorRegistry, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(registry, storages.UserRepository, storages.TokenStore, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
