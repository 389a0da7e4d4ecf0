package mcpserver

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/session"
	"github.com/shesviral/viralkit/internal/wizard"
)

func newUnjournaled() *Server {
	return New(session.NewRecorder(nil, "", wizard.New(catalog.Default())), "")
}

func TestServerStartRandomPort(t *testing.T) {
	srv := newUnjournaled()
	ctx := context.Background()

	port, err := srv.Start(ctx, 0)
	require.NoError(t, err)
	defer srv.Stop(ctx)

	assert.Greater(t, port, 0)
	assert.Contains(t, srv.URL(), ":")
	assert.True(t, strings.HasSuffix(srv.URL(), "/mcp"))
}

func TestServerDoubleStart(t *testing.T) {
	srv := newUnjournaled()
	ctx := context.Background()

	_, err := srv.Start(ctx, 0)
	require.NoError(t, err)
	defer srv.Stop(ctx)

	_, err = srv.Start(ctx, 0)
	assert.Error(t, err)
}

func TestServerStopIsIdempotent(t *testing.T) {
	srv := newUnjournaled()
	ctx := context.Background()
	require.NoError(t, srv.Stop(ctx))

	_, err := srv.Start(ctx, 0)
	require.NoError(t, err)
	require.NoError(t, srv.Stop(ctx))
	require.NoError(t, srv.Stop(ctx))
	assert.Nil(t, srv.httpServer)
}

func TestServerAnswersInitialize(t *testing.T) {
	srv := newUnjournaled()
	ctx := context.Background()
	_, err := srv.Start(ctx, 0)
	require.NoError(t, err)
	defer srv.Stop(ctx)

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL(), strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), serverName)
}
