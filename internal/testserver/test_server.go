// Package testserver runs the full planner stack behind an httptest server
// for functional tests.
package testserver

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/taskino/internal/app"
	"github.com/rpggio/taskino/internal/config"
	"github.com/rpggio/taskino/internal/mcp"
	"github.com/rpggio/taskino/internal/sqlite"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server *httptest.Server
	App    *app.App
	Clock  *Clock
}

// Clock is a settable time source shared with the planning guardrail.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// New starts a server over a fresh in-memory database. The clock starts at
// start; a zero start means 2026-03-01 09:00 UTC.
func New(t *testing.T, start time.Time) *TestServer {
	t.Helper()

	if start.IsZero() {
		start = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	}
	clock := &Clock{now: start}

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	planner := app.New(db, config.Default().Planning, nil, app.Options{Clock: clock.Now})
	mcpServer := mcp.NewServer(mcp.Config{Services: planner.MCPServices()})
	server := httptest.NewServer(mcp.NewHTTPHandler(mcpServer, nil))

	t.Cleanup(func() {
		server.Close()
		_ = planner.Close()
	})

	return &TestServer{Server: server, App: planner, Clock: clock}
}

// Connect opens an MCP client session over streamable HTTP.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}
