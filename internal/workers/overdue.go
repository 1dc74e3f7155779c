// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/service"
)

// OverdueWorker periodically asks the invoice service to flip Pending
// invoices past their due date to Overdue.
type OverdueWorker struct {
	invoices service.InvoiceService
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewOverdueWorker(invoices service.InvoiceService, interval time.Duration, logger *logger.Logger) *OverdueWorker {
	return &OverdueWorker{
		invoices: invoices,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is done. The first sweep happens
// after one full interval.
func (w *OverdueWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("overdue worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("overdue worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OverdueWorker) sweep(ctx context.Context) {
	marked, err := w.invoices.MarkOverdue(w.logger.WithContext(ctx), w.now())
	if err != nil {
		w.logger.Err(err).Msg("overdue sweep failed")
		return
	}
	if marked > 0 {
		w.logger.Info().Int64("marked", marked).Msg("invoices marked overdue")
	}
}
