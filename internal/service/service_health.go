package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/store"
)

var errNoDatabase = errors.New("no database configured")

type healthService struct {
	pinger store.Pinger

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// Check pings the database. A failure is reported as a storage error.
func (s *healthService) Check(ctx context.Context) error {
	if s.pinger == nil {
		return storageError(errNoDatabase)
	}

	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database is unreachable")
		return storageError(err)
	}

	return nil
}
