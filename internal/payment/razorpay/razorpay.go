package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrConfigInvalid    = errors.New("razorpay config invalid")
	ErrRequestFailed    = errors.New("razorpay request failed")
	ErrResponseInvalid  = errors.New("razorpay response invalid")
	ErrSignatureInvalid = errors.New("razorpay signature invalid")
)

const defaultBaseURL = "https://api.razorpay.com"

// Config Razorpay API credentials. An empty KeyID puts the storefront in
// degraded test mode: no gateway calls, payments auto-complete.
type Config struct {
	KeyID     string `json:"key_id"`     // public key id, shown to the browser widget
	KeySecret string `json:"key_secret"` // secret, used for basic auth and signature checks
	BaseURL   string `json:"base_url"`   // API base, defaults to https://api.razorpay.com
	TimeoutMS int    `json:"timeout_ms"` // HTTP timeout, defaults to 15000
}

// CreateOrderInput gateway order parameters
type CreateOrderInput struct {
	AmountPaise int64  // amount in the smallest currency unit
	Currency    string // ISO code, e.g. INR
	Receipt     string // merchant-side order number
}

// GatewayOrder created gateway order
type GatewayOrder struct {
	ID          string                 // gateway order id, e.g. order_xxx
	AmountPaise int64                  // echoed amount
	Currency    string                 // echoed currency
	Receipt     string                 // echoed receipt
	Status      string                 // created / attempted / paid
	Raw         map[string]interface{} // raw response
}

// ParseConfig parses a raw config map
func ParseConfig(raw map[string]interface{}) (*Config, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: empty config", ErrConfigInvalid)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal config failed", ErrConfigInvalid)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config failed", ErrConfigInvalid)
	}
	cfg.normalize()
	return &cfg, nil
}

// ValidateConfig checks live-mode credentials
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.KeyID) == "" {
		return fmt.Errorf("%w: key_id is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.KeySecret) == "" {
		return fmt.Errorf("%w: key_secret is required", ErrConfigInvalid)
	}
	return nil
}

func (c *Config) normalize() {
	c.KeyID = strings.TrimSpace(c.KeyID)
	c.KeySecret = strings.TrimSpace(c.KeySecret)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.TimeoutMS <= 0 {
		c.TimeoutMS = 15000
	}
}

// TestMode reports whether the storefront runs without gateway credentials
func (c *Config) TestMode() bool {
	return c == nil || strings.TrimSpace(c.KeyID) == ""
}

// CreateOrder creates a gateway order via the Orders API
func CreateOrder(ctx context.Context, cfg *Config, input CreateOrderInput) (*GatewayOrder, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if input.AmountPaise <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrConfigInvalid)
	}
	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = "INR"
	}

	params := map[string]interface{}{
		"amount":   input.AmountPaise,
		"currency": currency,
		"receipt":  input.Receipt,
	}
	respBytes, err := postJSON(ctx, cfg, cfg.BaseURL+"/v1/orders", params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var resp struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Receipt  string `json:"receipt"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("%w: missing order id", ErrResponseInvalid)
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(respBytes, &raw)

	return &GatewayOrder{
		ID:          resp.ID,
		AmountPaise: resp.Amount,
		Currency:    resp.Currency,
		Receipt:     resp.Receipt,
		Status:      resp.Status,
		Raw:         raw,
	}, nil
}

// Sign computes the checkout signature over "<order_id>|<payment_id>"
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature checks the signature posted by the checkout widget
func VerifyPaymentSignature(cfg *Config, orderID, paymentID, signature string) error {
	if cfg == nil || strings.TrimSpace(cfg.KeySecret) == "" {
		return ErrConfigInvalid
	}
	if orderID == "" || paymentID == "" || signature == "" {
		return ErrSignatureInvalid
	}
	expected := Sign(orderID, paymentID, cfg.KeySecret)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature)))) {
		return ErrSignatureInvalid
	}
	return nil
}

func postJSON(ctx context.Context, cfg *Config, endpoint string, params map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.KeyID, cfg.KeySecret)

	client := &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
