package builtin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// defaultCollection is the class queried when the call names none.
const defaultCollection = "Document"

// KnowledgeQueryTool runs semantic search against a Weaviate knowledge
// base. Without a configured endpoint, or when the collection does not
// exist, queries return empty results instead of failing the step.
type KnowledgeQueryTool struct {
	client *weaviate.Client
}

// NewKnowledgeQueryTool creates the knowledge_query tool. An empty URL
// leaves the tool in degraded mode: registered, but answering empty.
func NewKnowledgeQueryTool(weaviateURL string) *KnowledgeQueryTool {
	t := &KnowledgeQueryTool{}
	if weaviateURL == "" {
		return t
	}
	cfg := weaviate.Config{Host: weaviateURL, Scheme: "http"}
	if strings.HasPrefix(weaviateURL, "https://") {
		cfg.Scheme = "https"
		cfg.Host = strings.TrimPrefix(weaviateURL, "https://")
	} else if strings.HasPrefix(weaviateURL, "http://") {
		cfg.Host = strings.TrimPrefix(weaviateURL, "http://")
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		slog.Warn("Knowledge base client unavailable, queries will return empty",
			"url", weaviateURL,
			"error", err)
		return t
	}
	t.client = client
	return t
}

func (t *KnowledgeQueryTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        "knowledge_query",
		Description: "Semantic search over the local knowledge base. Returns matching documents with relevance scores.",
		Category:    models.CategoryKnowledge,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Natural language query",
				},
				"collection": map[string]any{
					"type":        "string",
					"description": "Collection to search (default Document)",
				},
				"top_k": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     50,
					"description": "Maximum number of results (default 5)",
				},
				"min_score": map[string]any{
					"type":        "number",
					"minimum":     0,
					"maximum":     1,
					"description": "Drop results whose certainty is below this",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (t *KnowledgeQueryTool) Execute(ctx context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Query      string  `json:"query"`
		Collection string  `json:"collection"`
		TopK       int     `json:"top_k"`
		MinScore   float64 `json:"min_score"`
	}
	if err := decodeParams(params, &args); err != nil {
		return nil, err
	}
	if t.client == nil {
		return success(map[string]any{"results": []any{}, "count": 0, "degraded": true}), nil
	}
	collection := args.Collection
	if collection == "" {
		collection = defaultCollection
	}
	topK := args.TopK
	if topK <= 0 {
		topK = 5
	}

	nearText := t.client.GraphQL().NearTextArgBuilder().
		WithConcepts([]string{args.Query})
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "title"},
		{Name: "source"},
		{Name: "_additional { certainty }"},
	}

	result, err := t.client.GraphQL().Get().
		WithClassName(collection).
		WithFields(fields...).
		WithNearText(nearText).
		WithLimit(topK).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("knowledge query: %w", err)
	}
	if len(result.Errors) > 0 {
		// Missing collection is the common uninitialized case.
		slog.Debug("Knowledge query returned GraphQL errors",
			"collection", collection,
			"error", result.Errors[0].Message)
		return success(map[string]any{"results": []any{}, "count": 0}), nil
	}

	hits := parseKnowledgeHits(result.Data["Get"], collection, args.MinScore)
	return success(map[string]any{"results": hits, "count": len(hits)}), nil
}

type knowledgeHit struct {
	Content string  `json:"content"`
	Title   string  `json:"title,omitempty"`
	Source  string  `json:"source,omitempty"`
	Score   float64 `json:"score"`
}

// parseKnowledgeHits walks the GraphQL Get response shape. Anything
// malformed is skipped rather than failing the whole query.
func parseKnowledgeHits(get any, collection string, minScore float64) []knowledgeHit {
	hits := []knowledgeHit{}
	data, ok := get.(map[string]any)
	if !ok {
		return hits
	}
	objects, ok := data[collection].([]any)
	if !ok {
		return hits
	}
	for _, obj := range objects {
		m, ok := obj.(map[string]any)
		if !ok {
			continue
		}
		hit := knowledgeHit{Score: 0.5}
		if s, ok := m["content"].(string); ok {
			hit.Content = s
		}
		if s, ok := m["title"].(string); ok {
			hit.Title = s
		}
		if s, ok := m["source"].(string); ok {
			hit.Source = s
		}
		if additional, ok := m["_additional"].(map[string]any); ok {
			if certainty, ok := additional["certainty"].(float64); ok {
				hit.Score = certainty
			}
		}
		if hit.Content == "" || hit.Score < minScore {
			continue
		}
		hits = append(hits, hit)
	}
	return hits
}
