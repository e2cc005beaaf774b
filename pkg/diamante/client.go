package diamante

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aurumjoias/aurum-backend/pkg/config"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
)

const (
	statusPath    = "/status"
	invoicesPath  = "/invoices"
	inventoryPath = "/inventory/sync"

	defaultTimeout = 10 * time.Second
)

var errLoggerRequired = errors.New("diamante logger is required")

// Client talks to the Diamante invoicing API with centralized auth, timeouts,
// logging, and the error boundary the billing flow relies on.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logger.Logger
}

// NewClient initializes the Diamante wrapper. Missing credentials are not an
// error: the client reports IsConfigured() == false and every operation
// degrades to a failure result.
func NewClient(ctx context.Context, cfg config.DiamanteConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logg,
	}

	if c.IsConfigured() {
		logg.Info(ctx, "diamante client initialized")
	} else {
		logg.Warn(ctx, "diamante client not configured, invoicing disabled")
	}
	return c, nil
}

// IsConfigured reports whether both the base URL and API key are present.
func (c *Client) IsConfigured() bool {
	if c == nil {
		return false
	}
	return c.baseURL != "" && c.apiKey != ""
}

// TestConnection performs a lightweight authenticated GET against /status.
// It never returns an error: failures are logged and reported as false.
func (c *Client) TestConnection(ctx context.Context) bool {
	if !c.IsConfigured() {
		return false
	}

	c.log(ctx, "request", "test_connection", map[string]any{"path": statusPath})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+statusPath, nil)
	if err != nil {
		c.log(ctx, "error", "test_connection", map[string]any{"error": err.Error()})
		return false
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", "test_connection", map[string]any{"error": err.Error()})
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	c.log(ctx, "response", "test_connection", map[string]any{"status_code": resp.StatusCode, "reachable": ok})
	return ok
}

// CreateInvoice submits the invoice payload. Transport or API failures come
// back as a failure result with a readable message, never as a raw error.
func (c *Client) CreateInvoice(ctx context.Context, params InvoiceParams) InvoiceResult {
	if !c.IsConfigured() {
		return InvoiceResult{ErrorMessage: "billing service is not configured"}
	}
	if len(params.Items) == 0 {
		return InvoiceResult{ErrorMessage: "invoice has no line items"}
	}

	c.log(ctx, "request", "create_invoice", map[string]any{
		"customer_name": params.Customer.Name,
		"item_count":    len(params.Items),
	})

	body, err := json.Marshal(params.toRequest())
	if err != nil {
		c.log(ctx, "error", "create_invoice", map[string]any{"error": err.Error()})
		return InvoiceResult{ErrorMessage: "failed to encode invoice payload"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+invoicesPath, bytes.NewReader(body))
	if err != nil {
		c.log(ctx, "error", "create_invoice", map[string]any{"error": err.Error()})
		return InvoiceResult{ErrorMessage: "failed to build invoice request"}
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", "create_invoice", map[string]any{"error": err.Error()})
		return InvoiceResult{ErrorMessage: "billing service unreachable"}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.log(ctx, "error", "create_invoice", map[string]any{"error": err.Error()})
		return InvoiceResult{ErrorMessage: "failed to read billing response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := apiErrorMessage(payload, resp.StatusCode)
		c.log(ctx, "error", "create_invoice", map[string]any{"status_code": resp.StatusCode, "error": msg})
		return InvoiceResult{ErrorMessage: msg}
	}

	var decoded createInvoiceResponse
	if err := json.Unmarshal(payload, &decoded); err != nil || decoded.InvoiceNumber == "" {
		c.log(ctx, "error", "create_invoice", map[string]any{"error": "response missing invoice number"})
		return InvoiceResult{ErrorMessage: "billing service returned no invoice number"}
	}

	c.log(ctx, "response", "create_invoice", map[string]any{"invoice_number": decoded.InvoiceNumber})
	return InvoiceResult{
		Success:       true,
		InvoiceNumber: decoded.InvoiceNumber,
		InvoiceURL:    decoded.InvoiceURL,
	}
}

// SyncInventory notifies Diamante of stock decrements. Fire-and-forget:
// failures are logged and swallowed so they can never block order completion.
func (c *Client) SyncInventory(ctx context.Context, items []InventoryItem) {
	if !c.IsConfigured() || len(items) == 0 {
		return
	}

	payload := syncInventoryRequest{}
	for _, item := range items {
		payload.Items = append(payload.Items, inventoryItemPayload{
			Reference: item.Reference,
			Quantity:  item.Quantity,
		})
	}

	c.log(ctx, "request", "sync_inventory", map[string]any{"item_count": len(items)})

	body, err := json.Marshal(payload)
	if err != nil {
		c.log(ctx, "error", "sync_inventory", map[string]any{"error": err.Error()})
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+inventoryPath, bytes.NewReader(body))
	if err != nil {
		c.log(ctx, "error", "sync_inventory", map[string]any{"error": err.Error()})
		return
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", "sync_inventory", map[string]any{"error": err.Error()})
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log(ctx, "error", "sync_inventory", map[string]any{"status_code": resp.StatusCode})
		return
	}

	c.log(ctx, "response", "sync_inventory", map[string]any{"status_code": resp.StatusCode})
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = c.redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("diamante %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Info(ctx, fmt.Sprintf("diamante %s", phase))
	}
}

func (c *Client) redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"token", "key", "secret", "email", "phone", "vat"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

func apiErrorMessage(body []byte, status int) string {
	var decoded struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil {
		if decoded.Message != "" {
			return decoded.Message
		}
		if decoded.Error != "" {
			return decoded.Error
		}
	}
	return fmt.Sprintf("billing service returned status %d", status)
}
