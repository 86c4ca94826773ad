package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/webapp/internal/config"
	"evalgo.org/webapp/internal/sysinfo"
	"evalgo.org/webapp/models"
)

type stubResolver struct {
	addrs []string
	err   error
}

func (s stubResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return s.addrs, s.err
}

var displayTime = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} UTC`)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Environment: "Production",
			Region:      "eu-west-1",
			InstanceID:  "i-123",
		},
	}
}

func newTestHandler(hostErr error, r sysinfo.Resolver) *Handler {
	collector := sysinfo.NewCollector(context.Background(),
		sysinfo.WithHostnameFunc(func() (string, error) { return "web-01", hostErr }),
		sysinfo.WithResolver(r),
		sysinfo.WithPlatform(sysinfo.Platform{Descriptor: "Linux-6.1.0-x86_64", RuntimeVersion: "go1.25.0"}),
	)
	return NewHandler(collector, testConfig())
}

func serveHome(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Home(e.NewContext(req, rec)))
	return rec
}

func TestHandlerCreation(t *testing.T) {
	cfg := testConfig()
	handler := NewHandler(nil, cfg)

	assert.NotNil(t, handler)
	assert.Equal(t, cfg, handler.config)
}

func TestHome(t *testing.T) {
	rec := serveHome(t, newTestHandler(nil, stubResolver{addrs: []string{"10.0.1.15"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "Application Status: HEALTHY")
	assert.Contains(t, body, "<strong>Hostname:</strong> web-01")
	assert.Contains(t, body, "<strong>IP Address:</strong> 10.0.1.15")
	assert.Contains(t, body, "<strong>Platform:</strong> Linux-6.1.0-x86_64")
	assert.Contains(t, body, "<strong>Environment:</strong> Production")
	assert.Contains(t, body, "<strong>Region:</strong> eu-west-1")
	assert.Contains(t, body, "<strong>Instance ID:</strong> i-123")
	assert.Contains(t, body, "<strong>Go Version:</strong> go1.25.0")
	assert.Contains(t, body, "<strong>Echo Version:</strong> "+echo.Version)
	assert.Contains(t, body, "<strong>Uptime:</strong> Running")
	assert.Regexp(t, displayTime, body)
	for _, f := range Features {
		assert.Contains(t, body, "<li>"+f+"</li>")
	}
}

func TestHomeResolutionFailure(t *testing.T) {
	tests := []struct {
		name     string
		hostErr  error
		resolver stubResolver
	}{
		{"hostname error", errors.New("no hostname"), stubResolver{addrs: []string{"10.0.1.15"}}},
		{"resolver error", nil, stubResolver{err: errors.New("no such host")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveHome(t, newTestHandler(tt.hostErr, tt.resolver))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "<strong>Hostname:</strong> Unknown")
			assert.Contains(t, body, "<strong>IP Address:</strong> Unknown")
			assert.Regexp(t, displayTime, body)
		})
	}
}

func TestHomeEscapesValues(t *testing.T) {
	var buf bytes.Buffer
	err := Home(PageData{
		Info: models.InstanceInfo{
			Environment: `<script>alert("x")</script>`,
		},
		Updated: "2026-10-19 08:15:02 UTC",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	body := buf.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Last updated: 2026-10-19 08:15:02 UTC")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("connection reset") }

func TestHomeWriteError(t *testing.T) {
	err := Home(PageData{}).Render(context.Background(), failingWriter{})
	assert.Error(t, err)
}

func TestHomeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Home(PageData{}).Render(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestInfoCardRows(t *testing.T) {
	var buf bytes.Buffer
	err := infoCard("System", systemFields(PageData{
		Info:             models.InstanceInfo{RuntimeVersion: "go1.25.0"},
		FrameworkVersion: "4.13.4",
		Uptime:           "Running",
	})).Render(context.Background(), &buf)
	require.NoError(t, err)

	assert.Equal(t, `<div class="info-card"><h3>System</h3>`+
		`<p><strong>Go Version:</strong> go1.25.0</p>`+
		`<p><strong>Echo Version:</strong> 4.13.4</p>`+
		`<p><strong>Uptime:</strong> Running</p></div>`, buf.String())
}
