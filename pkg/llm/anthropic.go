package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/praxislabs/praxis/pkg/models"
)

// MessagesClient captures the subset of the Anthropic SDK used by the
// provider.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
	NewStreaming(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion]
}

// AnthropicModel implements ChatModel on top of the Anthropic Messages API.
type AnthropicModel struct {
	msg         MessagesClient
	model       string
	maxTokens   int
	temperature *float64
}

// NewAnthropic builds an Anthropic-backed chat model.
func NewAnthropic(cfg Config) (*AnthropicModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}
	ac := sdk.NewClient(option.WithAPIKey(cfg.APIKey))
	return &AnthropicModel{
		msg:         &ac.Messages,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Chat issues a non-streaming Messages.New request.
func (m *AnthropicModel) Chat(ctx context.Context, req Request) (*Response, error) {
	params, err := m.buildParams(req)
	if err != nil {
		return nil, err
	}
	msg, err := m.msg.New(ctx, *params)
	if err != nil {
		return nil, fmt.Errorf("anthropic chat completion: %w", err)
	}
	return translateAnthropicMessage(msg)
}

// ChatStream issues a streaming request and adapts incremental events into
// StreamChunks. Tool use blocks are buffered until the block closes so the
// consumer only ever sees complete calls.
func (m *AnthropicModel) ChatStream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	params, err := m.buildParams(req)
	if err != nil {
		return nil, err
	}
	stream := m.msg.NewStreaming(ctx, *params)
	chunks := make(chan StreamChunk, 32)

	go func() {
		defer close(chunks)
		defer stream.Close()

		emit := func(c StreamChunk) bool {
			select {
			case chunks <- c:
				return true
			case <-ctx.Done():
				return false
			}
		}

		var (
			usage      *Usage
			stopReason string
			toolBlocks = make(map[int]*toolBuffer)
		)
		for stream.Next() {
			switch ev := stream.Current().AsAny().(type) {
			case sdk.ContentBlockStartEvent:
				if tu, ok := ev.ContentBlock.AsAny().(sdk.ToolUseBlock); ok {
					toolBlocks[int(ev.Index)] = &toolBuffer{id: tu.ID, name: tu.Name}
				}
			case sdk.ContentBlockDeltaEvent:
				switch delta := ev.Delta.AsAny().(type) {
				case sdk.TextDelta:
					if delta.Text == "" {
						continue
					}
					if !emit(StreamChunk{Content: delta.Text}) {
						return
					}
				case sdk.InputJSONDelta:
					if tb := toolBlocks[int(ev.Index)]; tb != nil {
						tb.fragments = append(tb.fragments, delta.PartialJSON)
					}
				}
			case sdk.ContentBlockStopEvent:
				tb := toolBlocks[int(ev.Index)]
				if tb == nil {
					continue
				}
				delete(toolBlocks, int(ev.Index))
				call := &models.ToolCall{
					ID:         tb.id,
					ToolName:   tb.name,
					Parameters: decodeToolArguments(tb.input()),
				}
				if !emit(StreamChunk{ToolCall: call}) {
					return
				}
			case sdk.MessageDeltaEvent:
				stopReason = string(ev.Delta.StopReason)
				usage = &Usage{
					InputTokens:  int(ev.Usage.InputTokens),
					OutputTokens: int(ev.Usage.OutputTokens),
				}
			}
		}
		if err := stream.Err(); err != nil {
			emit(StreamChunk{Err: fmt.Errorf("anthropic stream: %w", err), IsFinal: true})
			return
		}
		emit(StreamChunk{Usage: usage, StopReason: stopReason, IsFinal: true})
	}()

	return chunks, nil
}

func (m *AnthropicModel) buildParams(req Request) (*sdk.MessageNewParams, error) {
	if len(req.Messages) == 0 {
		return nil, errors.New("anthropic: messages are required")
	}
	messages, system := encodeAnthropicMessages(req.Messages)
	if len(messages) == 0 {
		return nil, errors.New("anthropic: at least one non-system message is required")
	}
	tools, err := encodeAnthropicTools(req.Tools)
	if err != nil {
		return nil, err
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = m.maxTokens
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	params := &sdk.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Messages:  messages,
		Model:     sdk.Model(m.model),
	}
	if len(system) > 0 {
		params.System = system
	}
	if len(tools) > 0 {
		params.Tools = tools
	}
	if t := req.Temperature; t != nil {
		params.Temperature = sdk.Float(*t)
	} else if m.temperature != nil {
		params.Temperature = sdk.Float(*m.temperature)
	}
	return params, nil
}

// encodeAnthropicMessages splits the transcript into conversation turns and
// system blocks. System messages become top-level system prompt blocks; tool
// results ride as user turns. Empty messages are dropped because the API
// rejects empty text blocks.
func encodeAnthropicMessages(msgs []models.Message) ([]sdk.MessageParam, []sdk.TextBlockParam) {
	conversation := make([]sdk.MessageParam, 0, len(msgs))
	system := make([]sdk.TextBlockParam, 0, 1)
	for _, m := range msgs {
		if m.Content == "" {
			continue
		}
		switch m.Role {
		case models.RoleSystem:
			system = append(system, sdk.TextBlockParam{Text: m.Content})
		case models.RoleAssistant:
			conversation = append(conversation, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			conversation = append(conversation, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}
	return conversation, system
}

func encodeAnthropicTools(defs []models.ToolDefinition) ([]sdk.ToolUnionParam, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]sdk.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		schema, err := anthropicInputSchema(def.Parameters)
		if err != nil {
			return nil, fmt.Errorf("anthropic: tool %s schema: %w", def.Name, err)
		}
		u := sdk.ToolUnionParamOfTool(schema, def.Name)
		if u.OfTool != nil && def.Description != "" {
			u.OfTool.Description = sdk.String(def.Description)
		}
		out = append(out, u)
	}
	return out, nil
}

func anthropicInputSchema(params map[string]any) (sdk.ToolInputSchemaParam, error) {
	if len(params) == 0 {
		return sdk.ToolInputSchemaParam{}, nil
	}
	return sdk.ToolInputSchemaParam{ExtraFields: params}, nil
}

func translateAnthropicMessage(msg *sdk.Message) (*Response, error) {
	if msg == nil {
		return nil, errors.New("anthropic: response message is nil")
	}
	resp := &Response{StopReason: string(msg.StopReason)}
	var text strings.Builder
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			resp.ToolCalls = append(resp.ToolCalls, models.ToolCall{
				ID:         block.ID,
				ToolName:   block.Name,
				Parameters: decodeToolArguments(string(block.Input)),
			})
		}
	}
	resp.Content = text.String()
	resp.Usage = Usage{
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	return resp, nil
}

// toolBuffer accumulates streamed input_json_delta fragments for one
// tool_use content block.
type toolBuffer struct {
	id        string
	name      string
	fragments []string
}

func (tb *toolBuffer) input() string {
	joined := strings.Join(tb.fragments, "")
	if strings.TrimSpace(joined) == "" {
		return "{}"
	}
	return joined
}
