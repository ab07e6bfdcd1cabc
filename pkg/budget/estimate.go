package budget

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Estimation encoding. Close enough across current provider tokenizers for
// budgeting purposes.
const estimationEncoding = "cl100k_base"

var (
	encOnce sync.Once
	enc     *tiktoken.Tiktoken
)

// EstimateTokens approximates the token count of text. Used when a provider
// response carries no usage block. Falls back to a chars/4 heuristic if the
// encoding cannot be loaded.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	encOnce.Do(func() {
		e, err := tiktoken.GetEncoding(estimationEncoding)
		if err == nil {
			enc = e
		}
	})
	if enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(text)/4 + 1
}

// EstimateMessages approximates the token count of a chat transcript,
// including a small per-message envelope overhead.
func EstimateMessages(contents []string) int {
	total := 0
	for _, c := range contents {
		total += EstimateTokens(c) + 4
	}
	return total
}

// Truncate returns text cut down to approximately maxTokens tokens. Cheap
// guard for oversized tool output flowing back into prompts; cuts on a
// rune boundary.
func Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 || EstimateTokens(text) <= maxTokens {
		return text
	}
	// Rough 4 chars/token; trim then re-check leaves a small overshoot at
	// worst.
	limit := maxTokens * 4
	if limit >= len(text) {
		return text
	}
	cut := text[:limit]
	if idx := strings.LastIndexByte(cut, ' '); idx > limit/2 {
		cut = cut[:idx]
	}
	return cut + "…"
}
