package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/opennotebook/toolbridge/internal/dispatch"
	"github.com/opennotebook/toolbridge/internal/schema"
)

// BuildMCPTool converts a compiled ToolSpec into an mcp.Tool with the
// equivalent JSON schema.
func BuildMCPTool(spec schema.ToolSpec) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(spec.Description)}

	required := make(map[string]bool, len(spec.Parameters.Required))
	for _, name := range spec.Parameters.Required {
		required[name] = true
	}

	for name, param := range spec.Parameters.Properties {
		opts = append(opts, buildParamOption(name, param, required[name]))
	}
	return mcp.NewTool(spec.Name, opts...)
}

// buildParamOption maps a ParameterSpec to the appropriate mcp-go tool option.
func buildParamOption(name string, p schema.ParameterSpec, required bool) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case schema.TypeInteger, schema.TypeNumber:
		if f, ok := numericDefault(p.Default); ok {
			opts = append(opts, mcp.DefaultNumber(f))
		}
		return mcp.WithNumber(name, opts...)
	case schema.TypeBoolean:
		if b, ok := p.Default.(bool); ok {
			opts = append(opts, mcp.DefaultBool(b))
		}
		return mcp.WithBoolean(name, opts...)
	case schema.TypeArray:
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		if s, ok := p.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(s))
		}
		return mcp.WithString(name, opts...)
	}
}

// numericDefault normalizes the default value of a numeric parameter.
func numericDefault(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// GenericToolHandler creates a handler that routes an MCP tool call through
// the dispatcher. Dispatch failures come back as MCP error results so the
// model sees the classified message instead of a transport error.
func GenericToolHandler(executor Executor, tool string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := executor.Execute(ctx, tool, r.GetArguments())
		if err != nil {
			if de, ok := dispatch.AsError(err); ok {
				return errorResult(fmt.Sprintf("Error (%s): %s", de.Code, de.Message)), nil
			}
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		out, err := json.Marshal(result.Payload)
		if err != nil {
			return errorResult("failed to marshal tool result"), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(out))},
		}, nil
	}
}
