package service

import (
	"github.com/blackroad-os/hub/internal/adapter"
	"github.com/blackroad-os/hub/internal/config"
	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/store"
)

type Services struct {
	AuthService      AuthService
	InventoryService InventoryService
	SiteDataService  SiteDataService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	cloudflare := adapter.NewCloudflareClient(adapter.CloudflareConfig{
		AccountID: cfg.Platform.CloudflareAccountID,
		APIToken:  cfg.Platform.CloudflareAPIToken,
		Timeout:   cfg.Server.RequestTimeout,
	})
	vercel := adapter.NewVercelClient(adapter.VercelConfig{
		Token:   cfg.Platform.VercelToken,
		TeamID:  cfg.Platform.VercelTeamID,
		Timeout: cfg.Server.RequestTimeout,
	})

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		InventoryService: NewInventoryService(cloudflare, vercel, logger),
		SiteDataService:  NewSiteDataService(storages.SiteDataRepository, logger),
	}
}
