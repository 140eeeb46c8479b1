package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/toolbridge/toolbridge/internal/schema"
)

// Convert binds one remote tool descriptor and one live session into a
// locally callable Tool. The returned Tool holds a non-owning reference to
// the session: it is safe to call repeatedly while the session is open, and
// fails once the owning tool set has been closed.
//
// Conversion is cheap and runs once per tool per scope; nothing is cached.
func Convert(session Session, tool mcp.Tool) *schema.Tool {
	args, argTypes, argDesc := DeriveArgumentSpecs(tool.InputSchema)

	fn := func(ctx context.Context, kwargs map[string]any) (any, error) {
		req := mcp.CallToolRequest{}
		req.Params.Name = tool.Name
		req.Params.Arguments = kwargs
		result, err := session.CallTool(ctx, req)
		if err != nil {
			return nil, err
		}
		return reduceCallResult(tool.Name, result)
	}

	return schema.NewTool(fn, tool.Name, tool.Description, args, argTypes, argDesc)
}
