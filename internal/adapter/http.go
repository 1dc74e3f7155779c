package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-invoice/internal/config"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/utils"
	"github.com/MKhiriev/go-invoice/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs to /api/auth/signup.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	return h.acceptAuthResponse(resp, "register")
}

// Login implements [ServerAdapter]. It POSTs to /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	return h.acceptAuthResponse(resp, "login")
}

// acceptAuthResponse stores the token of a signup or login response. The
// token is read from the body, or from the Authorization header when the
// body carries none.
func (h *httpServerAdapter) acceptAuthResponse(resp *resty.Response, op string) (models.User, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var authResponse models.AuthResponse
	if err := json.Unmarshal(resp.Body(), &authResponse); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w", op, err)
	}

	token := authResponse.Token
	if token == "" {
		var err error
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.User{}, fmt.Errorf("%s parse bearer token: %w", op, err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("user_id", authResponse.User.UserID).Msgf("%s succeeded", op)

	return authResponse.User, nil
}

// ListInvoices implements [ServerAdapter]. GET /api/invoices.
func (h *httpServerAdapter) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	resp, err := h.authedRequest(ctx).Get("/api/invoices")
	if err != nil {
		return nil, fmt.Errorf("list invoices request: %w", err)
	}

	var invoices []models.Invoice
	if err = decode(resp, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// CreateInvoice implements [ServerAdapter]. POST /api/invoices.
func (h *httpServerAdapter) CreateInvoice(ctx context.Context, items []models.LineItem) (models.Invoice, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateInvoiceRequest{Items: items}).
		Post("/api/invoices")
	if err != nil {
		return models.Invoice{}, fmt.Errorf("create invoice request: %w", err)
	}

	var invoice models.Invoice
	return invoice, decode(resp, &invoice)
}

// GetInvoice implements [ServerAdapter]. GET /api/invoices/{id}.
func (h *httpServerAdapter) GetInvoice(ctx context.Context, invoiceID string) (models.Invoice, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", invoiceID).
		Get("/api/invoices/{id}")
	if err != nil {
		return models.Invoice{}, fmt.Errorf("get invoice request: %w", err)
	}

	var invoice models.Invoice
	return invoice, decode(resp, &invoice)
}

// UpdateInvoice implements [ServerAdapter]. PUT /api/invoices/{id}.
func (h *httpServerAdapter) UpdateInvoice(ctx context.Context, invoiceID string, update models.InvoiceUpdate) (models.Invoice, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", invoiceID).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/invoices/{id}")
	if err != nil {
		return models.Invoice{}, fmt.Errorf("update invoice request: %w", err)
	}

	var invoice models.Invoice
	return invoice, decode(resp, &invoice)
}

// SetInvoiceStatus implements [ServerAdapter]. PATCH /api/invoices/{id}/status.
func (h *httpServerAdapter) SetInvoiceStatus(ctx context.Context, invoiceID string, status models.InvoiceStatus) (models.Invoice, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", invoiceID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SetStatusRequest{Status: status}).
		Patch("/api/invoices/{id}/status")
	if err != nil {
		return models.Invoice{}, fmt.Errorf("set invoice status request: %w", err)
	}

	var invoice models.Invoice
	return invoice, decode(resp, &invoice)
}

// DeleteInvoice implements [ServerAdapter]. DELETE /api/invoices/{id}.
func (h *httpServerAdapter) DeleteInvoice(ctx context.Context, invoiceID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", invoiceID).
		Delete("/api/invoices/{id}")
	if err != nil {
		return fmt.Errorf("delete invoice request: %w", err)
	}

	return mapHTTPError(resp)
}

// InvoiceStats implements [ServerAdapter]. GET /api/invoices/stats.
func (h *httpServerAdapter) InvoiceStats(ctx context.Context) (models.InvoiceSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/invoices/stats")
	if err != nil {
		return models.InvoiceSummary{}, fmt.Errorf("invoice stats request: %w", err)
	}

	var summary models.InvoiceSummary
	return summary, decode(resp, &summary)
}

// ServerVersion implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}

	var version models.VersionResponse
	if err = decode(resp, &version); err != nil {
		return "", err
	}
	return version.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decode maps a non-2xx response to an error and otherwise unmarshals the
// body into dst.
func decode(resp *resty.Response, dst any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode %s %s response: %w", resp.Request.Method, resp.Request.URL, err)
	}
	return nil
}
