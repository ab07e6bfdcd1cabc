package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/praxislabs/praxis/pkg/models"
)

// FormatToolCatalog renders tool definitions for prompt injection, including
// parameter details pulled from each tool's JSON schema.
func FormatToolCatalog(tools []models.ToolDefinition) string {
	if len(tools) == 0 {
		return "No tools available."
	}

	var sb strings.Builder
	for i, tool := range tools {
		sb.WriteString(fmt.Sprintf("%d. **%s**: %s\n", i+1, tool.Name, tool.Description))

		params := extractParameters(tool.Parameters)
		if len(params) > 0 {
			sb.WriteString("    **Parameters**:\n")
			for _, p := range params {
				sb.WriteString("    - ")
				sb.WriteString(p)
				sb.WriteString("\n")
			}
		} else {
			sb.WriteString("    **Parameters**: None\n")
		}

		if i < len(tools)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// extractParameters flattens a JSON Schema object into one prompt line per
// property. Keys are sorted for deterministic output.
func extractParameters(schema map[string]any) []string {
	if schema == nil {
		return nil
	}
	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		return nil
	}

	required := make(map[string]bool)
	if reqList, ok := schema["required"].([]any); ok {
		for _, r := range reqList {
			if s, ok := r.(string); ok {
				required[s] = true
			}
		}
	}

	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var params []string
	for _, name := range keys {
		prop, ok := properties[name].(map[string]any)
		if !ok {
			continue
		}

		reqLabel := "optional"
		if required[name] {
			reqLabel = "required"
		}
		typeSuffix := ""
		if t, ok := prop["type"].(string); ok {
			typeSuffix = ", " + t
		}
		line := name + fmt.Sprintf(" (%s%s)", reqLabel, typeSuffix)

		if desc, ok := prop["description"].(string); ok && desc != "" {
			line += ": " + desc
		}

		var hints []string
		if def, ok := prop["default"]; ok {
			hints = append(hints, fmt.Sprintf("default: %v", def))
		}
		if enum, ok := prop["enum"].([]any); ok {
			vals := make([]string, 0, len(enum))
			for _, v := range enum {
				vals = append(vals, fmt.Sprintf("%q", v))
			}
			hints = append(hints, "choices: ["+strings.Join(vals, ", ")+"]")
		}
		if len(hints) > 0 {
			line += " [" + strings.Join(hints, "; ") + "]"
		}

		params = append(params, line)
	}
	return params
}
