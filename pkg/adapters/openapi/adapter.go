// Package openapi converts resolved kin-openapi schemas into the node
// algebra, so OpenAPI-described request bodies can feed the field-resolution
// engine directly. Only the shape-relevant subset of the schema object is
// inspected; validation keywords stay with the validation collaborator.
package openapi

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-autoform/pkg/schema"
)

// NodeFromSchema converts a schema reference into a node. References must be
// resolved before conversion; an unresolved or nil reference yields an
// invalid node, which classifies as unknown downstream.
func NodeFromSchema(ref *openapi3.SchemaRef) schema.Node {
	if ref == nil || ref.Value == nil {
		return schema.Node{}
	}
	src := ref.Value

	node := baseNode(src)

	if src.Default != nil {
		node = schema.WithDefault(node, src.Default)
	}
	if src.Nullable {
		node = schema.Nullable(node)
	}
	return node
}

func baseNode(src *openapi3.Schema) schema.Node {
	if len(src.OneOf) > 0 {
		options := make([]schema.Node, 0, len(src.OneOf))
		for _, option := range src.OneOf {
			options = append(options, NodeFromSchema(option))
		}
		return schema.Union(options...)
	}

	if node, ok := enumNode(src.Enum); ok {
		return node
	}

	switch firstSchemaType(src.Type) {
	case "string":
		return stringNode(src.Format)
	case "number", "integer":
		return schema.Number()
	case "boolean":
		return schema.Boolean()
	case "array":
		element := NodeFromSchema(src.Items)
		if !element.Valid() {
			return schema.Node{}
		}
		return schema.Array(element)
	case "object":
		fields := make(map[string]schema.Node, len(src.Properties))
		required := make(map[string]struct{}, len(src.Required))
		for _, name := range src.Required {
			required[name] = struct{}{}
		}
		for name, property := range src.Properties {
			field := NodeFromSchema(property)
			if _, mandatory := required[name]; !mandatory {
				field = schema.Optional(field)
			}
			fields[name] = field
		}
		return schema.Object(fields)
	default:
		return schema.Node{}
	}
}

// enumNode maps enum keywords. A single-value enum is a constant, which the
// algebra spells as a literal sentinel rather than a one-option enum.
func enumNode(values []any) (schema.Node, bool) {
	if len(values) == 0 {
		return schema.Node{}, false
	}
	if len(values) == 1 {
		return schema.Literal(values[0]), true
	}

	strs := make([]string, 0, len(values))
	for _, value := range values {
		s, ok := value.(string)
		if !ok {
			return schema.Node{}, false
		}
		strs = append(strs, s)
	}
	return schema.Enum(strs...), true
}

func stringNode(format string) schema.Node {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "email":
		return schema.String().WithCheck(schema.CheckEmail)
	case "date", "date-time":
		return schema.Date()
	default:
		return schema.String()
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
