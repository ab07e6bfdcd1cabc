package builtin

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// navTimeout bounds every browser action.
const navTimeout = 30 * time.Second

// BrowserTool drives a headless Chrome instance. The browser is launched on
// first use and reused across calls; the close action (or a timed-out
// action) tears it down so the next call starts fresh.
type BrowserTool struct {
	headless bool

	mu          sync.Mutex
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
}

// NewBrowserTool creates the browser tool.
func NewBrowserTool(headless bool) *BrowserTool {
	return &BrowserTool{headless: headless}
}

func (t *BrowserTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:          "browser",
		Description:   "Drive a headless browser: navigate, click, fill, extract HTML, take screenshots, read text, close.",
		Category:      models.CategoryBrowser,
		IsDestructive: true,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action": map[string]any{
					"type": "string",
					"enum": []string{"navigate", "click", "fill", "extract", "screenshot", "get_text", "close"},
				},
				"url": map[string]any{
					"type":        "string",
					"description": "Target URL (navigate)",
				},
				"selector": map[string]any{
					"type":        "string",
					"description": "CSS selector (click, fill, extract, get_text)",
				},
				"value": map[string]any{
					"type":        "string",
					"description": "Value to type (fill)",
				},
			},
			"required": []string{"action"},
		},
	}
}

func (t *BrowserTool) Execute(ctx context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Action   string `json:"action"`
		URL      string `json:"url"`
		Selector string `json:"selector"`
		Value    string `json:"value"`
	}
	if err := decodeParams(params, &args); err != nil {
		return nil, err
	}

	if args.Action == "close" {
		t.shutdown()
		return success(map[string]any{"closed": true}), nil
	}

	tabCtx, err := t.ensure()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	runCtx, cancel := context.WithTimeout(tabCtx, navTimeout)
	defer cancel()
	// Honor executor cancellation too.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	data, err := t.run(runCtx, args.Action, args.URL, args.Selector, args.Value)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			// The tab context is unusable after a deadline; relaunch next call.
			t.shutdown()
			return failure("browser action %q timed out after %s", args.Action, navTimeout), nil
		}
		return failure("browser action %q: %v", args.Action, err), nil
	}
	return success(data), nil
}

func (t *BrowserTool) run(ctx context.Context, action, url, selector, value string) (map[string]any, error) {
	switch action {
	case "navigate":
		if url == "" {
			return nil, fmt.Errorf("navigate requires url")
		}
		var title string
		if err := chromedp.Run(ctx,
			chromedp.Navigate(url),
			chromedp.Title(&title),
		); err != nil {
			return nil, err
		}
		return map[string]any{"url": url, "title": title}, nil

	case "click":
		if selector == "" {
			return nil, fmt.Errorf("click requires selector")
		}
		if err := chromedp.Run(ctx, chromedp.Click(selector, chromedp.ByQuery)); err != nil {
			return nil, err
		}
		return map[string]any{"clicked": selector}, nil

	case "fill":
		if selector == "" {
			return nil, fmt.Errorf("fill requires selector")
		}
		if err := chromedp.Run(ctx, chromedp.SetValue(selector, value, chromedp.ByQuery)); err != nil {
			return nil, err
		}
		return map[string]any{"filled": selector}, nil

	case "extract":
		sel := selector
		if sel == "" {
			sel = "html"
		}
		var html string
		if err := chromedp.Run(ctx, chromedp.OuterHTML(sel, &html, chromedp.ByQuery)); err != nil {
			return nil, err
		}
		return map[string]any{"selector": sel, "html": html}, nil

	case "screenshot":
		var buf []byte
		if err := chromedp.Run(ctx, chromedp.FullScreenshot(&buf, 90)); err != nil {
			return nil, err
		}
		return map[string]any{
			"screenshot": base64.StdEncoding.EncodeToString(buf),
			"format":     "png",
		}, nil

	case "get_text":
		sel := selector
		if sel == "" {
			sel = "body"
		}
		var text string
		if err := chromedp.Run(ctx, chromedp.Text(sel, &text, chromedp.ByQuery)); err != nil {
			return nil, err
		}
		return map[string]any{"selector": sel, "text": strings.TrimSpace(text)}, nil

	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}

// ensure launches the singleton browser if it is not already running.
func (t *BrowserTool) ensure() (context.Context, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tabCtx != nil {
		return t.tabCtx, nil
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", t.headless),
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	// Start the process now so launch failures surface here, not mid-action.
	startCtx, cancel := context.WithTimeout(tabCtx, navTimeout)
	defer cancel()
	if err := chromedp.Run(startCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, err
	}

	t.allocCancel = allocCancel
	t.tabCtx = tabCtx
	t.tabCancel = tabCancel
	return tabCtx, nil
}

// shutdown tears the browser down; the next action relaunches it.
func (t *BrowserTool) shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tabCancel != nil {
		t.tabCancel()
		t.tabCancel = nil
	}
	if t.allocCancel != nil {
		t.allocCancel()
		t.allocCancel = nil
	}
	t.tabCtx = nil
}
