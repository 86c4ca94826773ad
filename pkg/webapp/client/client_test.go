package client_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/webapp/internal/api"
	"evalgo.org/webapp/internal/config"
	"evalgo.org/webapp/internal/logging"
	"evalgo.org/webapp/internal/sysinfo"
	"evalgo.org/webapp/pkg/webapp/client"
)

type stubResolver struct{}

func (stubResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return []string{"10.0.1.15"}, nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 5000, ShutdownTimeout: time.Second},
		App:     config.AppConfig{Environment: "Staging", Region: "eu-west-1", InstanceID: "i-123"},
		Logging: config.LoggingConfig{Level: "off", Format: "json"},
	}
	logger := logging.New(cfg.Logging, &bytes.Buffer{})
	collector := sysinfo.NewCollector(context.Background(),
		sysinfo.WithHostnameFunc(func() (string, error) { return "web-01", nil }),
		sysinfo.WithResolver(stubResolver{}),
		sysinfo.WithPlatform(sysinfo.Platform{Descriptor: "Linux", RuntimeVersion: "go1.25.0"}),
	)

	ts := httptest.NewServer(api.New(cfg, collector, logger))
	t.Cleanup(ts.Close)
	return ts
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"valid", "http://localhost:5000", false},
		{"trailing slash", "http://localhost:5000/", false},
		{"empty", "", true},
		{"no scheme", "localhost:5000", true},
		{"bad scheme", "ftp://localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := client.New(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestClientEndpoints(t *testing.T) {
	ts := newServer(t)
	c, err := client.New(ts.URL+"/", client.WithTimeout(2*time.Second))
	require.NoError(t, err)
	ctx := context.Background()

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "aws-scalable-webapp", health.Service)
	assert.Equal(t, "1.0.0", health.Version)

	info, err := c.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "web-01", info.Hostname)
	assert.Equal(t, "10.0.1.15", info.IPAddress)
	assert.Equal(t, "Staging", info.Environment)
	assert.Equal(t, "eu-west-1", info.Region)
	assert.Equal(t, "i-123", info.InstanceID)

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "operational", status.Status)
	assert.Equal(t, "healthy", status.Checks.Database)
	assert.Equal(t, "healthy", status.Checks.Cache)
	assert.Equal(t, "healthy", status.Checks.ExternalServices)
}

func TestClientStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	_, err = c.Health(context.Background())
	var se *client.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "overloaded", se.Body)
}

func TestClientDecodeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	_, err = c.Status(context.Background())
	assert.ErrorContains(t, err, "decoding /api/status")
}

func TestClientContextCanceled(t *testing.T) {
	ts := newServer(t)
	c, err := client.New(ts.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Info(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientNilHTTPClient(t *testing.T) {
	ts := newServer(t)
	c, err := client.New(ts.URL, client.WithHTTPClient(nil))
	require.NoError(t, err)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
}
