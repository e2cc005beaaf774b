package diamante

import "github.com/shopspring/decimal"

// InvoiceCustomer is the customer block of an invoice request.
type InvoiceCustomer struct {
	Name       string
	Email      string
	VATNumber  string
	Phone      string
	Street     string
	PostalCode string
	City       string
	Country    string
}

// InvoiceItem is a single invoice line with the unit price frozen at order time.
type InvoiceItem struct {
	Reference   string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	VATRate     int
}

// InvoiceParams captures everything needed to issue an invoice.
type InvoiceParams struct {
	Customer      InvoiceCustomer
	Items         []InvoiceItem
	PaymentMethod string
	Notes         string
}

// InvoiceResult is the adapter's error boundary: transport and API failures
// surface as Success=false with a human-readable message, never as raw errors.
type InvoiceResult struct {
	Success       bool
	InvoiceNumber string
	InvoiceURL    string
	ErrorMessage  string
}

// InventoryItem is a best-effort stock decrement notification line.
type InventoryItem struct {
	Reference string
	Quantity  int
}

type customerPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	VATNumber  string `json:"vatNumber,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

type itemPayload struct {
	Reference   string `json:"reference"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	VATRate     int    `json:"vatRate"`
}

type createInvoiceRequest struct {
	Customer      customerPayload `json:"customer"`
	Items         []itemPayload   `json:"items"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type createInvoiceResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceURL    string `json:"invoiceUrl"`
	Message       string `json:"message"`
}

type syncInventoryRequest struct {
	Items []inventoryItemPayload `json:"items"`
}

type inventoryItemPayload struct {
	Reference string `json:"reference"`
	Quantity  int    `json:"quantity"`
}

func (p InvoiceParams) toRequest() createInvoiceRequest {
	req := createInvoiceRequest{
		Customer: customerPayload{
			Name:       p.Customer.Name,
			Email:      p.Customer.Email,
			VATNumber:  p.Customer.VATNumber,
			Phone:      p.Customer.Phone,
			Street:     p.Customer.Street,
			PostalCode: p.Customer.PostalCode,
			City:       p.Customer.City,
			Country:    p.Customer.Country,
		},
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
	}
	for _, item := range p.Items {
		req.Items = append(req.Items, itemPayload{
			Reference:   item.Reference,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			VATRate:     item.VATRate,
		})
	}
	return req
}
