package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/internal/middleware"
)

func newAdminRouter(adminPassword string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(adminPassword))
	// nil db: every request below must be rejected by the middleware before
	// the handler runs.
	admin.GET("/orders", GetAdminOrders(nil))
	return r
}

func TestAdminOrdersRejectsMissingToken(t *testing.T) {
	r := newAdminRouter("hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminOrdersRejectsWrongToken(t *testing.T) {
	r := newAdminRouter("hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	// Nothing beyond the error field may leak on a rejected request.
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if _, leaked := body["orders"]; leaked {
		t.Fatal("orders array leaked on unauthorized request")
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("expected error field in response")
	}
}

func TestAdminOrdersRejectsMalformedHeader(t *testing.T) {
	r := newAdminRouter("hunter2")

	for _, header := range []string{"hunter2", "Basic hunter2", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for header %q, got %d", header, w.Code)
		}
	}
}

func TestAdminOrdersRejectsWhenSecretUnset(t *testing.T) {
	// An empty server-side secret must not turn into an open admin API.
	r := newAdminRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
	req.Header.Set("Authorization", "Bearer ")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
