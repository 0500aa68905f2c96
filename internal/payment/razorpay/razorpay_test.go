package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(map[string]interface{}{
		"key_id":     " rzp_test_abc ",
		"key_secret": "secret",
	})
	if err != nil {
		t.Fatalf("parse config failed: %v", err)
	}
	if cfg.KeyID != "rzp_test_abc" {
		t.Fatalf("key id not trimmed: %q", cfg.KeyID)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.TimeoutMS != 15000 {
		t.Fatalf("expected default timeout, got %d", cfg.TimeoutMS)
	}
	if cfg.TestMode() {
		t.Fatalf("config with key id should not be test mode")
	}
}

func TestTestModeWithoutKey(t *testing.T) {
	var nilCfg *Config
	if !nilCfg.TestMode() {
		t.Fatalf("nil config must be test mode")
	}
	cfg := &Config{}
	if !cfg.TestMode() {
		t.Fatalf("empty key id must be test mode")
	}
}

func TestVerifyPaymentSignatureRoundTrip(t *testing.T) {
	cfg := &Config{KeyID: "rzp_test_abc", KeySecret: "topsecret"}

	sig := Sign("order_123", "pay_456", cfg.KeySecret)
	if err := VerifyPaymentSignature(cfg, "order_123", "pay_456", sig); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}

	if err := VerifyPaymentSignature(cfg, "order_123", "pay_999", sig); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("tampered payment id not rejected: %v", err)
	}
	if err := VerifyPaymentSignature(cfg, "order_123", "pay_456", sig+"00"); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("tampered signature not rejected: %v", err)
	}
	if err := VerifyPaymentSignature(cfg, "order_123", "pay_456", ""); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("empty signature not rejected: %v", err)
	}
}

func TestCreateOrderPostsBasicAuth(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test_1",
			"amount":   40000,
			"currency": "INR",
			"receipt":  "CW1",
			"status":   "created",
		})
	}))
	defer server.Close()

	cfg := &Config{KeyID: "rzp_test_abc", KeySecret: "topsecret", BaseURL: server.URL, TimeoutMS: 5000}
	order, err := CreateOrder(context.Background(), cfg, CreateOrderInput{AmountPaise: 40000, Currency: "INR", Receipt: "CW1"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID != "order_test_1" || order.AmountPaise != 40000 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if gotAuthUser != "rzp_test_abc" || gotAuthPass != "topsecret" {
		t.Fatalf("basic auth not sent: %s/%s", gotAuthUser, gotAuthPass)
	}
	if gotBody["receipt"] != "CW1" {
		t.Fatalf("receipt not posted: %v", gotBody)
	}
}

func TestCreateOrderRejectsBadAmount(t *testing.T) {
	cfg := &Config{KeyID: "rzp_test_abc", KeySecret: "topsecret"}
	if _, err := CreateOrder(context.Background(), cfg, CreateOrderInput{AmountPaise: 0}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("zero amount not rejected: %v", err)
	}
}
