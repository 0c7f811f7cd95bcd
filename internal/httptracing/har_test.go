package httptracing

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superfly/herokuctl/internal/logger"
)

func TestDisabledPassesTransportThrough(t *testing.T) {
	t.Setenv(EnvKey, "")
	active = nil
	Init()

	assert.False(t, Enabled())
	assert.Equal(t, http.DefaultTransport, NewTransport(http.DefaultTransport))
}

func TestRecordsTraffic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "out.har")
	t.Setenv(EnvKey, path)
	Init()
	defer func() { active = nil }()

	require.True(t, Enabled())

	client := &http.Client{Transport: NewTransport(http.DefaultTransport)}
	res, err := client.Get(server.URL + "/addons/redis-123")
	require.NoError(t, err)
	res.Body.Close()

	var buf bytes.Buffer
	Finish(logger.New(&buf, logger.Debug))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/addons/redis-123")
}

func TestFinishLogsWriteFailure(t *testing.T) {
	t.Setenv(EnvKey, filepath.Join(t.TempDir(), "missing", "out.har"))
	Init()
	defer func() { active = nil }()

	var buf bytes.Buffer
	Finish(logger.New(&buf, logger.Debug))

	assert.Contains(t, buf.String(), "failed writing HAR file")
}
