package service

import (
	"github.com/MKhiriev/go-invoice/internal/config"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/store"
	"github.com/MKhiriev/go-invoice/internal/utils"
)

type Services struct {
	AuthService    AuthService
	InvoiceService InvoiceService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	idGenerator := utils.NewUUIDGenerator()

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, idGenerator, cfg.App, logger),
		InvoiceService: NewInvoiceService(repositories.InvoiceRepository, idGenerator, cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(repositories.Pinger, logger),
	}, nil
}
