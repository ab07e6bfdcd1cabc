// Package safety classifies tool invocations into risk tiers and decides
// whether they need human approval.
package safety

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/praxislabs/praxis/pkg/models"
)

// AutonomyView is the slice of the autonomy service the classifier needs.
type AutonomyView interface {
	Level(ctx context.Context, projectPath string) models.AutonomyLevel
	Rules(ctx context.Context, projectPath string) (allowlist, blocklist []string)
}

// ToolCatalog resolves tool metadata (destructiveness, category, approval
// default). Satisfied by the tool registry.
type ToolCatalog interface {
	Definition(name string) (models.ToolDefinition, bool)
}

// Classifier maps (tool, params, project) to an ActionClassification.
// Decision order is fixed:
//
//  1. L5 bypass — before any rule evaluation. The risk tier is still the
//     heuristic best guess (it lands in the audit log), but approval is
//     never required.
//  2. Project blocklist → critical, approval required.
//  3. Project allowlist → safe, auto.
//  4. Heuristic base risk from tool metadata and parameter shape.
//  5. Autonomy threshold table → requires_approval.
type Classifier struct {
	autonomy AutonomyView
	catalog  ToolCatalog
}

// NewClassifier creates a classifier.
func NewClassifier(autonomy AutonomyView, catalog ToolCatalog) *Classifier {
	return &Classifier{autonomy: autonomy, catalog: catalog}
}

// Classify produces the verdict for one invocation. Pure: no side effects,
// no mutation of params.
func (c *Classifier) Classify(ctx context.Context, toolName string, params map[string]any, projectPath string) models.ActionClassification {
	level := c.autonomy.Level(ctx, projectPath)

	if level == models.AutonomyL5 {
		risk, _ := c.baseRisk(toolName, params, projectPath)
		return models.ActionClassification{
			ToolName:         toolName,
			Parameters:       params,
			RiskLevel:        risk,
			Reason:           "autonomy L5: approval bypassed",
			RequiresApproval: false,
		}
	}

	allowlist, blocklist := c.autonomy.Rules(ctx, projectPath)

	if pattern := matchRules(blocklist, toolName, params); pattern != "" {
		return models.ActionClassification{
			ToolName:         toolName,
			Parameters:       params,
			RiskLevel:        models.RiskCritical,
			Reason:           fmt.Sprintf("blocklist match: %q", pattern),
			RequiresApproval: true,
		}
	}

	if pattern := matchRules(allowlist, toolName, params); pattern != "" {
		return models.ActionClassification{
			ToolName:         toolName,
			Parameters:       params,
			RiskLevel:        models.RiskSafe,
			Reason:           fmt.Sprintf("allowlist match: %q", pattern),
			RequiresApproval: false,
		}
	}

	risk, reason := c.baseRisk(toolName, params, projectPath)

	requiresApproval := !level.AllowsAutoExecution(risk)
	if def, ok := c.catalog.Definition(toolName); ok && def.RequiresApprovalDefault {
		// Untrusted external tools keep their approval gate at any level
		// below L5, whatever their assessed tier.
		requiresApproval = true
		reason += "; tool defaults to requiring approval"
	}

	return models.ActionClassification{
		ToolName:         toolName,
		Parameters:       params,
		RiskLevel:        risk,
		Reason:           reason,
		RequiresApproval: requiresApproval,
	}
}

// networkIndicators in code passed to the execution tool escalate it to
// critical: the subprocess runs outside any sandbox.
var networkIndicators = []string{
	"http://", "https://", "curl ", "wget ", "socket.", "net.Dial",
	"urllib", "requests.", "fetch(",
}

func (c *Classifier) baseRisk(toolName string, params map[string]any, projectPath string) (models.RiskLevel, string) {
	def, known := c.catalog.Definition(toolName)
	if !known {
		return models.RiskModerate, "unknown tool, defaulting to moderate"
	}

	switch def.Category {
	case models.CategoryCode:
		if code, ok := params["code"].(string); ok {
			for _, indicator := range networkIndicators {
				if strings.Contains(code, indicator) {
					return models.RiskCritical, "network access in executed code"
				}
			}
		}
		return models.RiskDestructive, "arbitrary code execution"

	case models.CategoryFilesystem:
		if !def.IsDestructive {
			return models.RiskSafe, "read-only filesystem access"
		}
		if path, ok := params["path"].(string); ok && projectPath != "" && withinProject(path, projectPath) {
			return models.RiskModerate, "filesystem write inside the project"
		}
		return models.RiskDestructive, "filesystem write outside the project"
	}

	if def.IsDestructive {
		return models.RiskDestructive, fmt.Sprintf("destructive %s tool", def.Category)
	}
	if def.Category == models.CategoryExternal {
		return models.RiskModerate, "externally-sourced tool"
	}
	return models.RiskSafe, fmt.Sprintf("non-destructive %s tool", def.Category)
}

// matchRules returns the first pattern matching the tool name or any
// parameter substring, case-insensitively. Patterns are plain substrings;
// user rule lists are not trusted as regular expressions.
func matchRules(patterns []string, toolName string, params map[string]any) string {
	if len(patterns) == 0 {
		return ""
	}
	haystack := strings.ToLower(toolName)
	if len(params) > 0 {
		if raw, err := json.Marshal(params); err == nil {
			haystack += " " + strings.ToLower(string(raw))
		}
	}
	for _, pattern := range patterns {
		p := strings.ToLower(strings.TrimSpace(pattern))
		if p == "" {
			continue
		}
		if strings.Contains(haystack, p) {
			return pattern
		}
	}
	return ""
}

// withinProject reports whether path is projectPath or a descendant of it.
func withinProject(path, projectPath string) bool {
	rel, err := filepath.Rel(filepath.Clean(projectPath), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}
