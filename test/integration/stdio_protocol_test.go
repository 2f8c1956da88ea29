package integration_test

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// TestStdioProtocolCompliance verifies the server works correctly over stdio transport
// using the official MCP SDK client. This catches protocol issues that shell-based
// tests might miss.
func TestStdioProtocolCompliance(t *testing.T) {
	// Build the server first if binary doesn't exist
	binaryPath := "./bin/taskino"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		// Try relative to test directory
		binaryPath = "../../bin/taskino"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Build ./cmd/server into bin/taskino first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Create command with environment
	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"TASKINO_TRANSPORT=stdio",
		"TASKINO_DB_PATH=:memory:",
	)

	// Spawn server as subprocess using SDK's CommandTransport
	transport := &sdkmcp.CommandTransport{
		Command: cmd,
	}

	// Create client
	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	// Connect and initialize
	session, err := client.Connect(ctx, transport, nil)
	require.NoError(t, err, "Failed to connect to server")
	defer session.Close()

	// Verify initialize response
	t.Run("ServerInfo", func(t *testing.T) {
		initResult := session.InitializeResult()
		require.NotNil(t, initResult)
		require.NotNil(t, initResult.ServerInfo)
		require.Equal(t, "taskino", initResult.ServerInfo.Name)
		require.NotEmpty(t, initResult.ServerInfo.Version)
	})

	t.Run("ListTools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err, "tools/list failed")

		toolNames := make(map[string]bool)
		for _, tool := range tools.Tools {
			toolNames[tool.Name] = true
		}
		for _, name := range []string{
			"capture_task",
			"list_tasks",
			"get_today",
			"add_to_today",
			"swap_to_today",
			"bulk_add_to_today",
			"enforce_daily_continuity",
		} {
			require.True(t, toolNames[name], "Missing expected tool: %s", name)
		}
	})

	t.Run("CallCaptureTask", func(t *testing.T) {
		result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
			Name:      "capture_task",
			Arguments: map[string]any{"title": "Test Task"},
		})
		require.NoError(t, err, "tools/call capture_task failed")
		require.False(t, result.IsError, "capture_task returned error: %v", result)
		require.NotEmpty(t, result.Content)

		text, ok := result.Content[0].(*sdkmcp.TextContent)
		require.True(t, ok, "capture_task should return text content")
		require.Contains(t, text.Text, "Test Task")
	})

	t.Run("CallGetToday", func(t *testing.T) {
		result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
			Name:      "get_today",
			Arguments: map[string]any{},
		})
		require.NoError(t, err, "tools/call get_today failed")
		require.False(t, result.IsError, "get_today returned error: %v", result)
		require.NotEmpty(t, result.Content, "get_today returned no content")
	})
}

// TestStdioProtocol_StdoutHygiene verifies that the server doesn't write
// anything to stdout except valid JSON-RPC messages.
func TestStdioProtocol_StdoutHygiene(t *testing.T) {
	// Build the server first if binary doesn't exist
	binaryPath := "./bin/taskino"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/taskino"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Build ./cmd/server into bin/taskino first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Run server with a simple initialize request and capture stdout/stderr
	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"TASKINO_TRANSPORT=stdio",
		"TASKINO_DB_PATH=:memory:",
	)

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)

	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)

	stderr, err := cmd.StderrPipe()
	require.NoError(t, err)

	err = cmd.Start()
	require.NoError(t, err)

	// Send initialize request and keep stdin open for a bit
	initReq := `{"jsonrpc":"2.0","method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}},"id":1}`
	_, err = stdin.Write([]byte(initReq + "\n"))
	require.NoError(t, err)

	// Read output with timeout (don't close stdin yet)
	done := make(chan struct{})
	var stdoutBytes, stderrBytes []byte

	go func() {
		stdoutBytes, _ = readWithTimeout(stdout, 2*time.Second)
		stderrBytes, _ = readWithTimeout(stderr, 2*time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("Timeout waiting for server response")
	}

	// Now close stdin
	stdin.Close()
	cmd.Process.Kill()
	cmd.Wait()

	// Verify stdout starts with valid JSON
	require.NotEmpty(t, stdoutBytes, "Server produced no stdout output")
	require.True(t, stdoutBytes[0] == '{', "First character of stdout should be '{', got: %q", string(stdoutBytes[:min(50, len(stdoutBytes))]))

	// Logs should be on stderr (if any)
	t.Logf("Stderr output (logs): %s", string(stderrBytes))
}

func readWithTimeout(r interface{ Read([]byte) (int, error) }, timeout time.Duration) ([]byte, error) {
	result := make([]byte, 0, 4096)
	buf := make([]byte, 1024)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		// Try to read
		done := make(chan struct{})
		var n int
		var err error
		go func() {
			n, err = r.Read(buf)
			close(done)
		}()

		select {
		case <-done:
			if n > 0 {
				result = append(result, buf[:n]...)
			}
			if err != nil {
				return result, err
			}
		case <-time.After(100 * time.Millisecond):
			// No data available, check if we have enough
			if len(result) > 0 {
				return result, nil
			}
		}
	}
	return result, nil
}
