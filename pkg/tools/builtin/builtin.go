package builtin

import (
	"encoding/json"
	"fmt"

	"github.com/praxislabs/praxis/pkg/models"
)

// decodeParams maps validated parameters onto a typed args struct. The
// registry has already schema-checked them, so failures here are shape
// bugs, not user input problems.
func decodeParams(params map[string]any, out any) error {
	b, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	return nil
}

func success(data any) *models.ToolResult {
	return &models.ToolResult{Success: true, Data: data}
}

func failure(format string, args ...any) *models.ToolResult {
	return &models.ToolResult{Success: false, Error: fmt.Sprintf(format, args...)}
}
