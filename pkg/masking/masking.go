// Package masking redacts credential material from tool output before it
// is persisted to the audit trail, written to step records, or fed back to
// the chat model. Patterns are compiled once at construction; application
// is pure string rewriting and safe for concurrent use.
package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is one redaction rule: occurrences of Pattern are replaced with
// Replacement wherever they appear in a string.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
}

type compiledPattern struct {
	name        string
	re          *regexp.Regexp
	replacement string
}

// sensitiveKey matches parameter names whose values are masked wholesale,
// regardless of what the value looks like.
var sensitiveKey = regexp.MustCompile(`(?i)(?:api[_-]?key|apikey|password|passwd|pwd|secret|token|credential|authorization|private[_-]?key)`)

// Masker applies the built-in redaction set plus any extra patterns.
type Masker struct {
	patterns []compiledPattern
}

// New compiles the built-in patterns and any extras. Extras that fail to
// compile are logged and skipped rather than failing construction.
func New(extra ...Pattern) *Masker {
	m := &Masker{patterns: make([]compiledPattern, 0, len(builtinPatterns)+len(extra))}
	for _, p := range builtinPatterns {
		// Built-ins are fixed strings; a compile failure is a programming
		// error surfaced by the package tests.
		m.patterns = append(m.patterns, compiledPattern{
			name:        p.Name,
			re:          regexp.MustCompile(p.Pattern),
			replacement: p.Replacement,
		})
	}
	for _, p := range extra {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile redaction pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		m.patterns = append(m.patterns, compiledPattern{
			name:        p.Name,
			re:          re,
			replacement: p.Replacement,
		})
	}
	return m
}

// MaskString applies every pattern to s in order.
func (m *Masker) MaskString(s string) string {
	if s == "" {
		return s
	}
	for _, p := range m.patterns {
		s = p.re.ReplaceAllString(s, p.replacement)
	}
	return s
}

// MaskParams returns a masked copy of a parameter map. Values under
// sensitive keys are replaced wholesale; other string values get the
// pattern sweep; nested maps and slices are walked. The input is never
// mutated.
func (m *Masker) MaskParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		if s, ok := v.(string); ok && s != "" && sensitiveKey.MatchString(k) {
			out[k] = "__MASKED__"
			continue
		}
		out[k] = m.maskValue(v)
	}
	return out
}

func (m *Masker) maskValue(v any) any {
	switch val := v.(type) {
	case string:
		return m.MaskString(val)
	case map[string]any:
		return m.MaskParams(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = m.maskValue(item)
		}
		return out
	default:
		return v
	}
}
