package mcptools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/toolbridge/toolbridge/internal/schema"
)

// noDescription marks parameters whose schema declares no description.
const noDescription = "No description provided."

// DeriveArgumentSpecs converts a tool's declared input schema into three
// per-argument maps: the raw schema fragment (verbatim, nested keys
// preserved), the native type it maps to, and a human-readable description
// noting whether the argument is required.
//
// Malformed schemas never produce an error: unknown keys pass through unused,
// a missing properties map yields empty outputs, and a property whose own
// schema is not an object is kept with an empty fragment.
func DeriveArgumentSpecs(input mcp.ToolInputSchema) (map[string]map[string]any, map[string]schema.ArgType, map[string]string) {
	args := map[string]map[string]any{}
	argTypes := map[string]schema.ArgType{}
	argDesc := map[string]string{}

	required := make(map[string]bool, len(input.Required))
	for _, name := range input.Required {
		required[name] = true
	}

	for name, prop := range input.Properties {
		frag, ok := prop.(map[string]any)
		if !ok {
			frag = map[string]any{}
		}
		args[name] = frag
		argTypes[name] = argTypeOf(frag)

		desc := noDescription
		if d, ok := frag["description"].(string); ok && d != "" {
			desc = d
		}
		if required[name] {
			desc += " (Required)"
		} else {
			desc += " (Optional)"
		}
		argDesc[name] = desc
	}

	return args, argTypes, argDesc
}

// argTypeOf maps a schema fragment's "type" key to a native type.
// Anything unrecognized, including a missing or non-string type key,
// falls back to TypeAny.
func argTypeOf(frag map[string]any) schema.ArgType {
	typ, _ := frag["type"].(string)
	switch typ {
	case "object":
		return schema.TypeMap
	case "array":
		return schema.TypeSlice
	case "string":
		return schema.TypeString
	case "integer":
		return schema.TypeInt
	case "number":
		return schema.TypeFloat
	case "boolean":
		return schema.TypeBool
	default:
		return schema.TypeAny
	}
}

// reduceCallResult collapses a tool call's heterogeneous content into a
// single return value:
//
//   - exactly one textual item: that item's text as a bare string
//   - zero or several textual items: the texts in order, as []string
//   - no textual items at all: the non-textual items as-is
//
// A result flagged as an error always fails, regardless of content shape.
func reduceCallResult(toolName string, result *mcp.CallToolResult) (any, error) {
	var texts []string
	var opaque []mcp.Content
	for _, item := range result.Content {
		switch c := item.(type) {
		case mcp.TextContent:
			texts = append(texts, c.Text)
		default:
			opaque = append(opaque, item)
		}
	}

	if result.IsError {
		return nil, &InvocationError{Tool: toolName, Message: errorMessage(texts, result.Content)}
	}

	if len(texts) == 1 {
		return texts[0], nil
	}
	if len(texts) > 1 {
		return texts, nil
	}
	return opaque, nil
}

func errorMessage(texts []string, content []mcp.Content) string {
	switch len(texts) {
	case 0:
		return fmt.Sprintf("%v", content)
	case 1:
		return texts[0]
	default:
		return fmt.Sprintf("%v", texts)
	}
}
