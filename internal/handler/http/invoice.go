// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/service"
	"github.com/MKhiriev/go-invoice/internal/utils"
	"github.com/MKhiriev/go-invoice/models"
)

const invoiceIDParam = "id"

const invoiceDeletedMessage = "Invoice deleted successfully"

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	invoices, err := h.services.InvoiceService.ListInvoices(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, invoices, http.StatusOK)
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateInvoiceRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.createInvoice").Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, service.KindValidation, ErrInvalidJSON.Error())
		return
	}

	invoice, err := h.services.InvoiceService.CreateInvoice(r.Context(), ownerID, request.Items)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, invoice, http.StatusCreated)
}

func (h *Handler) invoiceStats(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.services.InvoiceService.Summary(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	invoice, err := h.services.InvoiceService.GetInvoice(r.Context(), ownerID, chi.URLParam(r, invoiceIDParam))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}

// updateInvoice accepts {items?, status?}. Any other field of the body,
// such as totalAmount or owner, is ignored.
func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var update models.InvoiceUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.updateInvoice").Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, service.KindValidation, ErrInvalidJSON.Error())
		return
	}

	invoice, err := h.services.InvoiceService.UpdateInvoice(r.Context(), ownerID, chi.URLParam(r, invoiceIDParam), update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}

func (h *Handler) setInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var request models.SetStatusRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.setInvoiceStatus").Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, service.KindValidation, ErrInvalidJSON.Error())
		return
	}

	invoice, err := h.services.InvoiceService.SetInvoiceStatus(r.Context(), ownerID, chi.URLParam(r, invoiceIDParam), request.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.InvoiceService.DeleteInvoice(r.Context(), ownerID, chi.URLParam(r, invoiceIDParam)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: invoiceDeletedMessage}, http.StatusOK)
}
