package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/praxislabs/praxis/pkg/models"
)

// ChatClient captures the subset of the go-openai client used by the
// provider.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// chatStream is the receive side of a streamed completion, satisfied by
// *openai.ChatCompletionStream.
type chatStream interface {
	Recv() (openai.ChatCompletionStreamResponse, error)
	Close() error
}

// OpenAIModel implements ChatModel via the OpenAI chat completions API.
// Google and xAI are served through the same code path with their
// OpenAI-compatible endpoints configured as the base URL.
type OpenAIModel struct {
	chat        ChatClient
	streamFn    func(ctx context.Context, request openai.ChatCompletionRequest) (chatStream, error)
	model       string
	maxTokens   int
	temperature *float64
}

// NewOpenAI builds a chat model for any OpenAI-compatible endpoint.
func NewOpenAI(cfg Config) (*OpenAIModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(oc)
	return &OpenAIModel{
		chat: client,
		streamFn: func(ctx context.Context, request openai.ChatCompletionRequest) (chatStream, error) {
			return client.CreateChatCompletionStream(ctx, request)
		},
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Chat issues a blocking chat completion request.
func (m *OpenAIModel) Chat(ctx context.Context, req Request) (*Response, error) {
	request, err := m.buildRequest(req)
	if err != nil {
		return nil, err
	}
	resp, err := m.chat.CreateChatCompletion(ctx, *request)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	out := translateOpenAIResponse(resp)
	out.RateLimit = parseRateLimitHeaders(resp.Header())
	return out, nil
}

// ChatStream issues a streamed completion. Usage arrives on the final chunk
// when the endpoint honors stream_options; endpoints that do not simply
// leave it nil.
func (m *OpenAIModel) ChatStream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	request, err := m.buildRequest(req)
	if err != nil {
		return nil, err
	}
	request.StreamOptions = &openai.StreamOptions{IncludeUsage: true}
	stream, err := m.streamFn(ctx, *request)
	if err != nil {
		return nil, fmt.Errorf("openai chat stream: %w", err)
	}
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
		)
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				emit(StreamChunk{Usage: usage, StopReason: stopReason, IsFinal: true})
				return
			}
			if err != nil {
				emit(StreamChunk{Err: fmt.Errorf("openai stream: %w", err), IsFinal: true})
				return
			}
			if resp.Usage != nil {
				usage = &Usage{
					InputTokens:  resp.Usage.PromptTokens,
					OutputTokens: resp.Usage.CompletionTokens,
				}
			}
			for _, choice := range resp.Choices {
				if choice.FinishReason != "" {
					stopReason = string(choice.FinishReason)
				}
				if choice.Delta.Content == "" {
					continue
				}
				if !emit(StreamChunk{Content: choice.Delta.Content}) {
					return
				}
			}
		}
	}()

	return chunks, nil
}

func (m *OpenAIModel) buildRequest(req Request) (*openai.ChatCompletionRequest, error) {
	if len(req.Messages) == 0 {
		return nil, errors.New("openai: messages are required")
	}
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		if msg.Content == "" {
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openAIRole(msg.Role),
			Content: msg.Content,
		})
	}
	tools, err := encodeOpenAITools(req.Tools)
	if err != nil {
		return nil, err
	}
	request := &openai.ChatCompletionRequest{
		Model:    m.model,
		Messages: messages,
		Tools:    tools,
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = m.maxTokens
	}
	if maxTokens > 0 {
		request.MaxTokens = maxTokens
	}
	if t := req.Temperature; t != nil {
		request.Temperature = float32(*t)
	} else if m.temperature != nil {
		request.Temperature = float32(*m.temperature)
	}
	return request, nil
}

// openAIRole maps transcript roles onto API roles. Native tool messages
// require a tool_call_id the flattened history does not keep, so tool
// results are replayed as user turns.
func openAIRole(role models.MessageRole) string {
	switch role {
	case models.RoleSystem:
		return openai.ChatMessageRoleSystem
	case models.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

func encodeOpenAITools(defs []models.ToolDefinition) ([]openai.Tool, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	tools := make([]openai.Tool, 0, len(defs))
	for _, def := range defs {
		params := json.RawMessage(`{"type":"object"}`)
		if len(def.Parameters) > 0 {
			data, err := json.Marshal(def.Parameters)
			if err != nil {
				return nil, fmt.Errorf("marshal tool %s schema: %w", def.Name, err)
			}
			params = data
		}
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  params,
			},
		})
	}
	return tools, nil
}

func translateOpenAIResponse(resp openai.ChatCompletionResponse) *Response {
	out := &Response{
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}
	choice := resp.Choices[0]
	out.Content = choice.Message.Content
	out.StopReason = string(choice.FinishReason)
	for _, call := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, models.ToolCall{
			ID:         call.ID,
			ToolName:   call.Function.Name,
			Parameters: decodeToolArguments(call.Function.Arguments),
		})
	}
	return out
}

// parseRateLimitHeaders reads the x-ratelimit header family returned by
// OpenAI-compatible endpoints. Absent headers yield nil.
func parseRateLimitHeaders(h http.Header) *RateLimit {
	remaining := h.Get("x-ratelimit-remaining-requests")
	if remaining == "" {
		return nil
	}
	n, err := strconv.Atoi(remaining)
	if err != nil {
		return nil
	}
	rl := &RateLimit{Remaining: n}
	if reset := h.Get("x-ratelimit-reset-requests"); reset != "" {
		if d, err := time.ParseDuration(reset); err == nil {
			rl.ResetAt = time.Now().Add(d)
		}
	}
	return rl
}
