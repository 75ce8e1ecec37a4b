package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inlineOAS30 has one operation without a summary or default response.
const inlineOAS30 = `openapi: "3.0.3"
info:
  title: Test API
  version: "1.0.0"
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: OK
`

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaslint-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m))
	return m
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"analyze", "metrics", "rules"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_Analyze(t *testing.T) {
	reportCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "analyze",
		Arguments: map[string]any{
			"spec": map[string]any{"content": inlineOAS30, "name": "pets.yaml"},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "pets.yaml", structured["path"])
	assert.Equal(t, "oas3", structured["grammar"])
	assert.Equal(t, float64(2), structured["issue_count"])

	issues, ok := structured["issues"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 2)
	first := issues[0].(map[string]any)
	assert.Contains(t, []any{"DefaultResponse", "ProvideOpSummary"}, first["rule"])
	position := first["position"].(map[string]any)
	assert.InDelta(t, 7.0, position["line"], 0)
}

func TestIntegration_CallTool_AnalyzeGroupBy(t *testing.T) {
	reportCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "analyze",
		Arguments: map[string]any{
			"spec":     map[string]any{"file": petstoreFile},
			"group_by": "severity",
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	groups, ok := structured["groups"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, groups)
	top := groups[0].(map[string]any)
	assert.Equal(t, "major", top["key"])
	assert.InDelta(t, 3.0, top["count"], 0)
	assert.Nil(t, structured["issues"])
}

func TestIntegration_CallTool_AnalyzeErrors(t *testing.T) {
	session := startTestSession(t)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"no input", map[string]any{"spec": map[string]any{}}},
		{"unknown rule", map[string]any{"spec": map[string]any{"content": inlineOAS30}, "rules": []string{"Nope"}}},
		{"bad severity", map[string]any{"spec": map[string]any{"content": inlineOAS30}, "min_severity": "urgent"}},
		{"bad group", map[string]any{"spec": map[string]any{"content": inlineOAS30}, "group_by": "file"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "analyze", Arguments: tt.args})
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestIntegration_CallTool_Metrics(t *testing.T) {
	reportCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "metrics",
		Arguments: map[string]any{
			"spec":  map[string]any{"file": "../../testdata/file-lines.yaml"},
			"lines": true,
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(13), structured["ncloc"])
	assert.Equal(t, float64(4), structured["comment_lines"])
	assert.Equal(t, float64(2), structured["complexity"])
	assert.Equal(t, []any{float64(9), float64(12)}, structured["suppressed_line_numbers"])
}

func TestIntegration_CallTool_MetricsFatal(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "metrics",
		Arguments: map[string]any{"spec": map[string]any{"content": "openapi: 3.0.0\ninfo: [\n"}},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestIntegration_CallTool_Rules(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "rules",
		Arguments: map[string]any{"tag": "documentation"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(2), structured["count"])
	rules := structured["rules"].([]any)
	keys := make([]any, 0, len(rules))
	for _, r := range rules {
		keys = append(keys, r.(map[string]any)["key"])
	}
	assert.Equal(t, []any{"DocumentedTag", "ProvideOpSummary"}, keys)
}
