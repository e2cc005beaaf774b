package billing

// StatusDTO reports whether the invoicing integration is usable right now.
type StatusDTO struct {
	Configured bool   `json:"configured"`
	Reachable  bool   `json:"reachable"`
	Message    string `json:"message"`
}

// InvoiceDTO is returned once an invoice has been issued and persisted.
type InvoiceDTO struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceURL    string `json:"invoice_url,omitempty"`
}
