package service

import (
	"github.com/mpetrenko/authd/internal/config"
	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
