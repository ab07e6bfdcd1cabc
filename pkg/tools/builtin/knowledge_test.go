package builtin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeQueryDegradedWithoutEndpoint(t *testing.T) {
	tool := NewKnowledgeQueryTool("")
	res, err := tool.Execute(context.Background(), map[string]any{"query": "anything"}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	data := resultData(t, res)
	assert.Equal(t, true, data["degraded"])
	assert.Equal(t, 0, data["count"])
}

func TestParseKnowledgeHits(t *testing.T) {
	get := map[string]any{
		"Document": []any{
			map[string]any{
				"content":     "first doc",
				"title":       "First",
				"source":      "docs/first.md",
				"_additional": map[string]any{"certainty": 0.91},
			},
			map[string]any{
				"content":     "weak match",
				"_additional": map[string]any{"certainty": 0.12},
			},
			map[string]any{
				// No content field, dropped.
				"title": "empty",
			},
			map[string]any{
				"content": "no certainty defaults to 0.5",
			},
		},
	}

	hits := parseKnowledgeHits(get, "Document", 0.3)
	require.Len(t, hits, 2)
	assert.Equal(t, "first doc", hits[0].Content)
	assert.Equal(t, 0.91, hits[0].Score)
	assert.Equal(t, 0.5, hits[1].Score)

	assert.Empty(t, parseKnowledgeHits(nil, "Document", 0))
	assert.Empty(t, parseKnowledgeHits(get, "Other", 0))
}
