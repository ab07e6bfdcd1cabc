package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/praxislabs/praxis/pkg/metrics"
	"github.com/praxislabs/praxis/pkg/models"
)

// entry pairs a tool with its registry-side definition and compiled schema.
// For external tools the definition differs from the tool's own: the name is
// namespaced and the description carries the server prefix.
type entry struct {
	tool     Tool
	def      models.ToolDefinition
	schema   *jsonschema.Schema
	serverID string // "" for built-in tools
}

// Registry is the process-wide tool table. Built-in tools are loaded at
// startup; external tools come and go with their server connections. Lookup
// checks external first so a dynamically registered tool wins a deliberate
// name collision.
type Registry struct {
	mu       sync.RWMutex
	builtin  map[string]*entry
	external map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builtin:  make(map[string]*entry),
		external: make(map[string]*entry),
	}
}

// RegisterBuiltin adds a built-in tool under its own name. Registration
// fails on a duplicate name or an uncompilable parameter schema.
func (r *Registry) RegisterBuiltin(tool Tool) error {
	def := tool.Definition()
	schema, err := compileSchema(def.Parameters)
	if err != nil {
		return fmt.Errorf("tool %q: %w", def.Name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.builtin[def.Name]; exists {
		return fmt.Errorf("tool %q already registered", def.Name)
	}
	r.builtin[def.Name] = &entry{tool: tool, def: def, schema: schema}
	return nil
}

// RegisterExternal adds a tool discovered on an external server. The stored
// definition gets the namespaced name ext_{serverID[:8]}_{name}, a
// [server_name] description prefix, and requires_approval_default=true when
// the server's trust is user_added. The namespaced name is returned.
func (r *Registry) RegisterExternal(serverID, serverName string, trust models.TrustLevel, tool Tool) (string, error) {
	def := tool.Definition()
	namespaced := ExternalName(serverID, def.Name)
	schema, err := compileSchema(def.Parameters)
	if err != nil {
		return "", fmt.Errorf("tool %q from server %q: %w", def.Name, serverName, err)
	}
	def.Name = namespaced
	def.Description = fmt.Sprintf("[%s] %s", serverName, def.Description)
	def.RequiresApprovalDefault = trust == models.TrustUserAdded
	if !knownCategory(def.Category) {
		def.Category = models.CategoryExternal
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.external[namespaced]; exists {
		slog.Warn("Replacing external tool registration",
			"tool", namespaced,
			"server", serverName)
	}
	r.external[namespaced] = &entry{tool: tool, def: def, schema: schema, serverID: serverID}
	return namespaced, nil
}

// UnregisterServer removes every tool registered by the given server and
// returns how many were dropped.
func (r *Registry) UnregisterServer(serverID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for name, e := range r.external {
		if e.serverID == serverID {
			delete(r.external, name)
			removed++
		}
	}
	return removed
}

// Get resolves a tool by name, external namespace first.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.external[name]; ok {
		return e.tool, true
	}
	if e, ok := r.builtin[name]; ok {
		return e.tool, true
	}
	return nil, false
}

// Definition returns the registry-side definition for a tool.
func (r *Registry) Definition(name string) (models.ToolDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.external[name]; ok {
		return e.def, true
	}
	if e, ok := r.builtin[name]; ok {
		return e.def, true
	}
	return models.ToolDefinition{}, false
}

// Definitions enumerates every registered tool, sorted by name, for LLM
// function-calling catalogs. External entries shadow same-named built-ins.
func (r *Registry) Definitions() []models.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]models.ToolDefinition, 0, len(r.builtin)+len(r.external))
	for name, e := range r.builtin {
		if _, shadowed := r.external[name]; shadowed {
			continue
		}
		defs = append(defs, e.def)
	}
	for _, e := range r.external {
		defs = append(defs, e.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Execute validates the call's parameters against the tool's schema and
// dispatches. Validation failures wrap ErrInvalidParams and never reach the
// tool. The result always carries the call ID and wall-clock duration.
func (r *Registry) Execute(ctx context.Context, call models.ToolCall, agentCtx *AgentContext) (*models.ToolResult, error) {
	r.mu.RLock()
	e, ok := r.external[call.ToolName]
	if !ok {
		e, ok = r.builtin[call.ToolName]
	}
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, call.ToolName)
	}

	if err := validateParams(e.schema, call.Parameters); err != nil {
		return nil, fmt.Errorf("%w: tool %q: %v", ErrInvalidParams, call.ToolName, err)
	}

	start := time.Now()
	result, err := e.tool.Execute(ctx, call.Parameters, agentCtx)
	elapsed := time.Since(start)

	metrics.ToolDuration.WithLabelValues(call.ToolName).Observe(elapsed.Seconds())
	if err != nil {
		metrics.ToolExecutions.WithLabelValues(call.ToolName, "false").Inc()
		return nil, err
	}
	result.CallID = call.ID
	result.DurationMS = elapsed.Milliseconds()
	metrics.ToolExecutions.WithLabelValues(call.ToolName, strconv.FormatBool(result.Success)).Inc()
	return result, nil
}

// ExternalName builds the namespaced registry name for a server tool.
func ExternalName(serverID, toolName string) string {
	prefix := serverID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("ext_%s_%s", prefix, toolName)
}

// compileSchema compiles a JSON Schema given as a decoded object. A nil
// schema compiles to one accepting any object.
func compileSchema(raw map[string]any) (*jsonschema.Schema, error) {
	if raw == nil {
		raw = map[string]any{"type": "object"}
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", normalize(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func validateParams(schema *jsonschema.Schema, params map[string]any) error {
	if params == nil {
		params = map[string]any{}
	}
	return schema.Validate(normalize(params))
}

// normalize round-trips a value through JSON so the validator sees exactly
// the types json.Unmarshal produces (float64 numbers, no Go ints).
func normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

func knownCategory(c string) bool {
	switch c {
	case models.CategoryFilesystem, models.CategoryNetwork, models.CategoryCode,
		models.CategoryBrowser, models.CategoryRepo, models.CategoryKnowledge,
		models.CategoryExternal, models.CategoryGeneral:
		return true
	}
	return false
}
