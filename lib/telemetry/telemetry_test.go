package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestSetupForTestingWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	_, err = SetupFromEnv(context.Background(), "test:telemetry")
	require.ErrorIs(t, err, os.ErrNotExist)

	cleanup := SetupForTesting(t, "test:telemetry")
	cleanup()
	// second setup of the same environment is a no-op
	SetupForTesting(t, "test:telemetry")()
}

func TestNewResource(t *testing.T) {
	r, err := newResource("raid-cli", Config{})
	require.NoError(t, err)
	name, ok := r.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	require.Equal(t, "raid-cli", name.AsString())

	r, err = newResource("raid-cli", Config{
		ServiceName: "raid-nightly",
		Attributes:  map[string]string{"deployment.environment": "nightly"},
	})
	require.NoError(t, err)
	name, _ = r.Set().Value(semconv.ServiceNameKey)
	require.Equal(t, "raid-nightly", name.AsString())
	env, ok := r.Set().Value(attribute.Key("deployment.environment"))
	require.True(t, ok)
	require.Equal(t, "nightly", env.AsString())
}

func TestConfigDefaults(t *testing.T) {
	require.Equal(t, defaultMetricInterval, Config{}.metricInterval())
	require.Equal(t, 30*time.Second, Config{MetricIntervalSeconds: 30}.metricInterval())

	conn := OtlpConnConfig{GrpcEndpoint: "http://localhost:4317", HttpEndpoint: "http://localhost:4318"}
	require.Equal(t, "grpc", conn.transport())
	require.Equal(t, "http://localhost:4317", conn.endpoint())
	conn.GrpcEndpoint = ""
	require.Equal(t, "http", conn.transport())
	require.Equal(t, "http://localhost:4318", conn.endpoint())
}

func TestShutdownEmpty(t *testing.T) {
	require.NoError(t, Telemetry{}.Shutdown(context.Background()))
}

func TestInstrumentResty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := resty.New().SetBaseURL(server.URL)
	InstrumentResty(client, "test")

	res, err := client.R().Get("/")
	require.NoError(t, err)
	require.Equal(t, "ok", res.String())

	res, err = client.R().Get("/missing")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, res.StatusCode())
}
