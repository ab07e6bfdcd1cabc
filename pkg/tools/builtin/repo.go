package builtin

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

const githubAPI = "https://api.github.com"

// RepoTool performs repository operations against the GitHub REST API:
// create repositories, list them, read and write files, open issues and
// pull requests. The token comes from the GITHUB_TOKEN environment variable
// unless the call provides one, which wins.
type RepoTool struct {
	client *http.Client
	base   string
}

// NewRepoTool creates the repo tool.
func NewRepoTool() *RepoTool {
	return &RepoTool{
		client: &http.Client{Timeout: 30 * time.Second},
		base:   githubAPI,
	}
}

func (t *RepoTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:          "repo",
		Description:   "Work with GitHub repositories: create_repo, list_repos, read_file, write_file, create_issue, create_pr.",
		Category:      models.CategoryRepo,
		IsDestructive: true,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action": map[string]any{
					"type": "string",
					"enum": []string{"create_repo", "list_repos", "read_file", "write_file", "create_issue", "create_pr"},
				},
				"repo": map[string]any{
					"type":        "string",
					"description": "Repository as owner/name (all actions except create_repo and list_repos)",
				},
				"name": map[string]any{
					"type":        "string",
					"description": "New repository name (create_repo)",
				},
				"private": map[string]any{
					"type":        "boolean",
					"description": "Create the repository as private (create_repo)",
				},
				"path": map[string]any{
					"type":        "string",
					"description": "File path inside the repository (read_file, write_file)",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "File content (write_file)",
				},
				"message": map[string]any{
					"type":        "string",
					"description": "Commit message (write_file)",
				},
				"title": map[string]any{
					"type":        "string",
					"description": "Issue or pull request title",
				},
				"body": map[string]any{
					"type":        "string",
					"description": "Issue or pull request body",
				},
				"head": map[string]any{
					"type":        "string",
					"description": "Source branch (create_pr)",
				},
				"base": map[string]any{
					"type":        "string",
					"description": "Target branch (create_pr), default main",
				},
				"token": map[string]any{
					"type":        "string",
					"description": "Access token override; falls back to GITHUB_TOKEN",
				},
			},
			"required": []string{"action"},
		},
	}
}

type repoArgs struct {
	Action  string `json:"action"`
	Repo    string `json:"repo"`
	Name    string `json:"name"`
	Private bool   `json:"private"`
	Path    string `json:"path"`
	Content string `json:"content"`
	Message string `json:"message"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Head    string `json:"head"`
	Base    string `json:"base"`
	Token   string `json:"token"`
}

func (t *RepoTool) Execute(ctx context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args repoArgs
	if err := decodeParams(params, &args); err != nil {
		return nil, err
	}
	token := args.Token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return failure("no access token: set GITHUB_TOKEN or pass token"), nil
	}

	switch args.Action {
	case "create_repo":
		if args.Name == "" {
			return failure("create_repo requires name"), nil
		}
		return t.call(ctx, token, http.MethodPost, "/user/repos", map[string]any{
			"name":    args.Name,
			"private": args.Private,
		}, http.StatusCreated, func(raw map[string]any) map[string]any {
			return pick(raw, "full_name", "html_url", "private", "default_branch")
		})

	case "list_repos":
		return t.listRepos(ctx, token)

	case "read_file":
		owner, repo, err := splitRepo(args.Repo)
		if err != nil {
			return failure("%v", err), nil
		}
		if args.Path == "" {
			return failure("read_file requires path"), nil
		}
		return t.readFile(ctx, token, owner, repo, args.Path)

	case "write_file":
		owner, repo, err := splitRepo(args.Repo)
		if err != nil {
			return failure("%v", err), nil
		}
		if args.Path == "" {
			return failure("write_file requires path"), nil
		}
		return t.writeFile(ctx, token, owner, repo, args)

	case "create_issue":
		owner, repo, err := splitRepo(args.Repo)
		if err != nil {
			return failure("%v", err), nil
		}
		if args.Title == "" {
			return failure("create_issue requires title"), nil
		}
		return t.call(ctx, token, http.MethodPost,
			fmt.Sprintf("/repos/%s/%s/issues", owner, repo),
			map[string]any{"title": args.Title, "body": args.Body},
			http.StatusCreated, func(raw map[string]any) map[string]any {
				return pick(raw, "number", "html_url", "title", "state")
			})

	case "create_pr":
		owner, repo, err := splitRepo(args.Repo)
		if err != nil {
			return failure("%v", err), nil
		}
		if args.Title == "" || args.Head == "" {
			return failure("create_pr requires title and head"), nil
		}
		base := args.Base
		if base == "" {
			base = "main"
		}
		return t.call(ctx, token, http.MethodPost,
			fmt.Sprintf("/repos/%s/%s/pulls", owner, repo),
			map[string]any{"title": args.Title, "body": args.Body, "head": args.Head, "base": base},
			http.StatusCreated, func(raw map[string]any) map[string]any {
				return pick(raw, "number", "html_url", "title", "state")
			})

	default:
		return failure("unknown action %q", args.Action), nil
	}
}

// call runs one API request with a JSON body and projects the response.
func (t *RepoTool) call(ctx context.Context, token, method, path string, body map[string]any, wantStatus int, project func(map[string]any) map[string]any) (*models.ToolResult, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, t.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", "Bearer "+token)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return failure("GitHub returned HTTP %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(msg))), nil
	}
	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response for %s: %w", path, err)
	}
	return success(project(raw)), nil
}

func (t *RepoTool) listRepos(ctx context.Context, token string) (*models.ToolResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.base+"/user/repos?per_page=50&sort=updated", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github list repos: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return failure("GitHub returned HTTP %d listing repositories", resp.StatusCode), nil
	}

	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode repo list: %w", err)
	}
	repos := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, pick(r, "full_name", "html_url", "private", "default_branch"))
	}
	return success(map[string]any{"repos": repos, "count": len(repos)}), nil
}

func (t *RepoTool) readFile(ctx context.Context, token, owner, repo, path string) (*models.ToolResult, error) {
	res, err := t.call(ctx, token, http.MethodGet,
		fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path),
		nil, http.StatusOK, func(raw map[string]any) map[string]any {
			return raw
		})
	if err != nil || !res.Success {
		return res, err
	}
	raw := res.Data.(map[string]any)
	encoded, _ := raw["content"].(string)
	decoded, derr := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\n", ""))
	if derr != nil {
		return failure("decode file content: %v", derr), nil
	}
	return success(map[string]any{
		"path":    path,
		"content": string(decoded),
		"sha":     raw["sha"],
		"size":    raw["size"],
	}), nil
}

func (t *RepoTool) writeFile(ctx context.Context, token, owner, repo string, args repoArgs) (*models.ToolResult, error) {
	contentsPath := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, args.Path)

	// Updating an existing file needs its blob sha; a 404 means create.
	sha := ""
	if res, err := t.call(ctx, token, http.MethodGet, contentsPath, nil, http.StatusOK, func(raw map[string]any) map[string]any {
		return raw
	}); err == nil && res.Success {
		sha, _ = res.Data.(map[string]any)["sha"].(string)
	}

	message := args.Message
	if message == "" {
		message = fmt.Sprintf("Update %s", args.Path)
	}
	body := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(args.Content)),
	}
	if sha != "" {
		body["sha"] = sha
	}
	return t.callPut(ctx, token, contentsPath, body)
}

// callPut handles the contents API, which answers 200 for updates and 201
// for creates.
func (t *RepoTool) callPut(ctx context.Context, token, path string, body map[string]any) (*models.ToolResult, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, t.base+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github PUT %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return failure("GitHub returned HTTP %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(msg))), nil
	}
	var raw struct {
		Commit struct {
			SHA     string `json:"sha"`
			HTMLURL string `json:"html_url"`
		} `json:"commit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response for %s: %w", path, err)
	}
	return success(map[string]any{"commit_sha": raw.Commit.SHA, "commit_url": raw.Commit.HTMLURL}), nil
}

func splitRepo(full string) (owner, repo string, err error) {
	parts := strings.SplitN(full, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repo must be owner/name, got %q", full)
	}
	return parts[0], parts[1], nil
}

// pick projects a subset of keys out of an API response.
func pick(raw map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			out[k] = v
		}
	}
	return out
}
