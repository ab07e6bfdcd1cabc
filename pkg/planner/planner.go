// Package planner turns a task into an ordered Plan by prompting the chat
// model with the available tool catalog and parsing its JSON reply.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/models"
)

const systemPrompt = `You are the planning module of an autonomous agent. Decompose the task into the minimum number of executable steps.

Rules:
- Each step either names exactly one tool from the catalog below (with params matching its schema) or sets tool_name to null for a reasoning-only step.
- dependencies lists the ids of earlier steps whose results a step needs. Leave it empty when the step is independent. Dependencies must never form a cycle.
- Number step ids from 1 in execution order.
- Prefer a single step for simple tasks. Fewer steps means faster results.

Respond with ONLY this JSON object (no markdown fences, no prose):
{
  "task": "<the task verbatim>",
  "overview": "<one sentence describing the approach>",
  "steps": [
    {"id": 1, "description": "<concrete action>", "tool_name": "<catalog tool name or null>", "params": {<tool params or omit>}, "dependencies": []}
  ]
}`

// Planner produces Plans. It never mutates session state; each call returns
// a fresh Plan and the token usage of the planning call.
type Planner struct {
	model llm.ChatModel
}

// New creates a Planner backed by the given chat model.
func New(model llm.ChatModel) *Planner {
	return &Planner{model: model}
}

// CreatePlan prompts the model with the tool catalog and parses the reply.
// A reply that is not a usable plan (malformed JSON, no steps, broken
// dependency graph) degrades to a single-step fallback plan rather than an
// error; only a failed model call is an error.
func (p *Planner) CreatePlan(ctx context.Context, task string, catalog []models.ToolDefinition, history []models.Message) (*models.Plan, llm.Usage, error) {
	req := llm.Request{Messages: buildMessages(task, catalog, history)}
	resp, err := p.model.Chat(ctx, req)
	if err != nil {
		return nil, llm.Usage{}, fmt.Errorf("planning chat: %w", err)
	}
	usage := llm.EnsureUsage(req, resp)
	plan, perr := parsePlan(task, resp.Content)
	if perr != nil {
		slog.Warn("Plan parse failed, falling back to single-step plan",
			"task", task,
			"error", perr)
		return FallbackPlan(task), usage, nil
	}
	return plan, usage, nil
}

// FallbackPlan wraps the task in one reasoning-only step so the run loop
// still makes progress when no structured plan is available. The executor
// answers such steps by asking the model directly.
func FallbackPlan(task string) *models.Plan {
	return &models.Plan{
		Task:     task,
		Overview: "Respond directly without tools.",
		Steps: []*models.PlanStep{{
			ID:          1,
			Description: task,
			Status:      models.StepPending,
		}},
	}
}

func buildMessages(task string, catalog []models.ToolDefinition, history []models.Message) []models.Message {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nAvailable tools:\n")
	sb.WriteString(FormatToolCatalog(catalog))

	messages := make([]models.Message, 0, len(history)+2)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: sb.String()})
	messages = append(messages, history...)
	messages = append(messages, models.Message{
		Role:    models.RoleUser,
		Content: "Task:\n" + task + "\n\nProduce the plan JSON now.",
	})
	return messages
}

// parsePlan strictly decodes a plan reply. The task field is overwritten
// with the canonical task; model echoes drift.
func parsePlan(task, raw string) (*models.Plan, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, errors.New("empty response")
	}
	if !strings.HasPrefix(cleaned, "{") {
		return nil, errors.New("response is not a JSON object")
	}
	var plan models.Plan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if len(plan.Steps) == 0 {
		return nil, errors.New("plan has no steps")
	}
	for _, step := range plan.Steps {
		if step.Description == "" {
			return nil, fmt.Errorf("step %d has no description", step.ID)
		}
		if step.ToolName != nil && *step.ToolName == "" {
			step.ToolName = nil
		}
		step.Status = models.StepPending
		step.Result = ""
		step.Error = ""
	}
	plan.Task = task
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// stripFences unwraps a markdown code fence, with or without a language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
