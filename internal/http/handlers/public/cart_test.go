package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crave-wave/cravewave/internal/provider"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/gin-gonic/gin"
)

func newCartTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uint(1))
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/cart/items/1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h := New(&provider.Container{CartService: service.NewCartService(nil, nil)})
	return c, w, h
}

func TestSetCartItemQuantityZeroGetsQuantityMessage(t *testing.T) {
	// quantity 0 must pass JSON binding and be rejected by the service rule,
	// not swallowed by a generic binding error
	for _, body := range []string{`{"quantity":0}`, `{}`} {
		c, w, h := newCartTestContext(t, body)
		h.SetCartItemQuantity(c)

		if !strings.Contains(w.Body.String(), "quantity must be at least 1") {
			t.Fatalf("body %s: expected quantity rule message, got %s", body, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"status_code":400`) {
			t.Fatalf("body %s: expected status_code 400, got %s", body, w.Body.String())
		}
	}
}
