package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/prompt-relay/internal/config"
	"github.com/kube-rca/prompt-relay/internal/metrics"
	"github.com/kube-rca/prompt-relay/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestRouter(stub *stubModelClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics.Register(reg)
	svc := service.NewPromptService(stub, config.DefaultSampling())
	return NewRouter(NewPromptHandler(svc), []string{"http://localhost:3000"}, reg)
}

func postPrompt(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prompt", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPromptHandlerSuccess(t *testing.T) {
	r := newTestRouter(&stubModelClient{resp: `{"generations":[{"text":"hello world"}]}`})

	w := postPrompt(r, `{"prompt":"Say hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `"hello world"` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestPromptHandlerErrors(t *testing.T) {
	r := newTestRouter(&stubModelClient{resp: `{"generations":[{"text":"x"}]}`})
	if w := postPrompt(r, `not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	r = newTestRouter(&stubModelClient{resp: `{"id":"abc"}`})
	if w := postPrompt(r, `{"prompt":"hi"}`); w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	r = newTestRouter(&stubModelClient{err: errors.New("ThrottlingException")})
	if w := postPrompt(r, `{"prompt":"hi"}`); w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestRouterAuxiliaryRoutes(t *testing.T) {
	r := newTestRouter(&stubModelClient{resp: `{"generations":[{"text":"hello"}]}`})
	postPrompt(r, `{"prompt":"Say hi"}`)

	for _, path := range []string{"/ping", "/", "/openapi.json", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if path == "/metrics" && !strings.Contains(w.Body.String(), "prompt_relay_requests_total") {
			t.Fatalf("expected relay counter in metrics output")
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(&stubModelClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/prompt", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header")
	}
}
