package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"portal/internal/api"
	"portal/internal/api/handler/v1handler"
	mockportal "portal/internal/portal/mock"
	"portal/pkg/controller"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newTestServer(t *testing.T, riverUI http.Handler) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "portal_test_total"})
	reg.MustRegister(counter)
	counter.Inc()

	srv, err := api.NewServer(api.Deps{
		Deps:     v1handler.Deps{Portal: mockportal.NewMockPortal(gomock.NewController(t))},
		Gatherer: reg,
		RiverUI:  riverUI,
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		Addr:              ":0",
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
		CORSOrigins:       []string{"*"},
	})
	require.NoError(t, err)

	return srv.Handler
}

func get(t *testing.T, h http.Handler, target string) *http.Response {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec.Result()
}

func TestNewServer_requiresPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}

func TestNewServer_specs(t *testing.T) {
	res := get(t, newTestServer(t, nil), "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(body, &doc))

	routes := map[string][]string{
		"/v1/extract":                  {"post"},
		"/v1/extract/document":         {"post"},
		"/v1/abstracts":                {"post", "get"},
		"/v1/abstracts/{id}":           {"get", "delete"},
		"/v1/abstracts/{id}/review":    {"post"},
		"/v1/abstracts/{id}/reextract": {"post"},
		"/v1/abstracts/{id}/activity":  {"get"},
		"/v1/dashboard":                {"get"},
		"/v1/me":                       {"get"},
	}
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			require.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}
}

func TestNewServer_metrics(t *testing.T) {
	res := get(t, newTestServer(t, nil), "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "portal_test_total 1")
}

func TestNewServer_docs(t *testing.T) {
	res := get(t, newTestServer(t, nil), "/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestNewServer_v1RequiresAuth(t *testing.T) {
	res := get(t, newTestServer(t, nil), "/v1/me")

	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
}

func TestNewServer_riverUI(t *testing.T) {
	ui := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	require.Equal(t, http.StatusTeapot, get(t, newTestServer(t, ui), "/riverui/jobs").StatusCode)
	require.Equal(t, http.StatusNotFound, get(t, newTestServer(t, nil), "/riverui/jobs").StatusCode)
}

func TestNewServer_probes(t *testing.T) {
	h := newTestServer(t, nil)

	require.Equal(t, http.StatusOK, get(t, h, "/healthz").StatusCode)
	require.Equal(t, http.StatusOK, get(t, h, "/readyz").StatusCode)

	srv, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Portal: mockportal.NewMockPortal(gomock.NewController(t))},
		ReadinessChecks: map[string]controller.HealthCheck{
			"postgres": func(context.Context) error { return errors.New("connection refused") },
		},
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		MetricsPath:       "/metrics",
		CORSOrigins:       []string{"*"},
	})
	require.NoError(t, err)

	res := get(t, srv.Handler, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"unavailable","failed":["postgres"]}`, string(body))
}

func TestNewServer_pprof(t *testing.T) {
	res := get(t, newTestServer(t, nil), "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
