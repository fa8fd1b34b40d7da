package httpserver

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nextgear/internal/catalog"
	"nextgear/internal/domain"
	"nextgear/internal/ledger"
	"nextgear/internal/store"
)

// stubResolver maps the raw initData string straight to a username so tests
// can pick an identity per request: "admin" resolves as the admin, anything
// else as a plain member, "bad" fails authentication.
type stubResolver struct{}

func (stubResolver) Resolve(initData string) (*domain.Identity, error) {
	switch initData {
	case "bad":
		return nil, errors.New("signature mismatch")
	case "admin":
		return &domain.Identity{Username: "next_gear_manager", IsAdmin: true}, nil
	default:
		return &domain.Identity{Username: initData}, nil
	}
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(t *testing.T, products ...domain.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New(products...)
	st := store.New(cat, ledger.New(cat))
	router, err := buildRouter(logDiscard(), Deps{
		Store:         st,
		Resolver:      stubResolver{},
		AdminUsername: "next_gear_manager",
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doRequest(router *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("Authorization", "tma "+user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBuildRouterRequiresDeps(t *testing.T) {
	if _, err := buildRouter(logDiscard(), Deps{}); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductsServedWithoutAuth(t *testing.T) {
	router := newTestRouter(t, domain.Product{ID: "p1", Name: "Dunk Low", PriceCents: 100, InStock: true})
	rec := doRequest(router, http.MethodGet, "/api/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Dunk Low"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestInvalidInitDataRejected(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(router, http.MethodGet, "/api/products", "bad", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMutationsRequireIdentity(t *testing.T) {
	router := newTestRouter(t, domain.Product{ID: "p1", Name: "Dunk Low", PriceCents: 100})
	rec := doRequest(router, http.MethodPost, "/api/cart/items", "", `{"productId":"p1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAdminRoutesForbiddenForMembers(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(router, http.MethodGet, "/api/admin/orders", "reseller_king", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestInitDataHeaderFallback(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("X-Telegram-Init-Data", "reseller_king")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"reseller_king"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
