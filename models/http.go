package models

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateInvoiceRequest is the payload of POST /api/invoices.
type CreateInvoiceRequest struct {
	Items []LineItem `json:"items"`
}

// SetStatusRequest is the payload of PATCH /api/invoices/{id}/status.
type SetStatusRequest struct {
	Status InvoiceStatus `json:"status"`
}
