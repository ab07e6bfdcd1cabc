package llm

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/praxislabs/praxis/pkg/models"
)

// StubModel replays scripted responses in FIFO order and falls back to
// deterministic defaults once the script is exhausted: a single-step plan
// when tools are offered, a short echo otherwise. It backs PRAXIS_TEST_MODE
// runs and end-to-end tests.
type StubModel struct {
	mu    sync.Mutex
	queue []Response
}

// NewStub builds a stub model preloaded with the given responses.
func NewStub(scripted ...Response) *StubModel {
	return &StubModel{queue: append([]Response(nil), scripted...)}
}

// Enqueue appends a scripted response consumed by a later Chat call.
func (s *StubModel) Enqueue(resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, resp)
}

// Chat pops the next scripted response, or synthesizes a default one.
func (s *StubModel) Chat(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if len(s.queue) > 0 {
		resp := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		return &resp, nil
	}
	s.mu.Unlock()
	return s.defaultResponse(req), nil
}

// ChatStream delivers the Chat result as a content chunk per tool call and
// text block, then a final usage chunk.
func (s *StubModel) ChatStream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	resp, err := s.Chat(ctx, req)
	if err != nil {
		return nil, err
	}
	chunks := make(chan StreamChunk, len(resp.ToolCalls)+2)
	go func() {
		defer close(chunks)
		if resp.Content != "" {
			select {
			case chunks <- StreamChunk{Content: resp.Content}:
			case <-ctx.Done():
				return
			}
		}
		for i := range resp.ToolCalls {
			select {
			case chunks <- StreamChunk{ToolCall: &resp.ToolCalls[i]}:
			case <-ctx.Done():
				return
			}
		}
		usage := resp.Usage
		select {
		case chunks <- StreamChunk{Usage: &usage, StopReason: resp.StopReason, IsFinal: true}:
		case <-ctx.Done():
		}
	}()
	return chunks, nil
}

func (s *StubModel) defaultResponse(req Request) *Response {
	task := lastUserMessage(req.Messages)
	var content string
	if len(req.Tools) > 0 {
		plan := map[string]any{
			"task":     task,
			"overview": "Answer directly without tools.",
			"steps": []map[string]any{{
				"id":           1,
				"description":  task,
				"tool_name":    nil,
				"dependencies": []int{},
			}},
		}
		data, _ := json.Marshal(plan)
		content = string(data)
	} else {
		content = "Stub response: " + task
	}
	return &Response{
		Content:    content,
		StopReason: "end_turn",
		Usage: Usage{
			InputTokens:  transcriptTokens(req.Messages),
			OutputTokens: len(content)/4 + 1,
		},
	}
}

func lastUserMessage(msgs []models.Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == models.RoleUser {
			return msgs[i].Content
		}
	}
	if len(msgs) > 0 {
		return msgs[len(msgs)-1].Content
	}
	return ""
}

// transcriptTokens is a cheap length heuristic. Scripted responses carry
// their own usage; only the default path needs a plausible number.
func transcriptTokens(msgs []models.Message) int {
	total := 0
	for _, m := range msgs {
		total += len(m.Content)/4 + 1
	}
	return total
}
