package builtin

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepoTool(handler http.Handler) (*RepoTool, func()) {
	srv := httptest.NewServer(handler)
	tool := NewRepoTool()
	tool.base = srv.URL
	return tool, srv.Close
}

func TestRepoNoTokenFails(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	tool := NewRepoTool()
	res, err := tool.Execute(context.Background(), map[string]any{"action": "list_repos"}, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "no access token")
}

func TestRepoTokenParamBeatsEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	tool, cleanup := testRepoTool(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer param-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{
		"action": "list_repos",
		"token":  "param-token",
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
}

func TestRepoCreateIssue(t *testing.T) {
	tool, cleanup := testRepoTool(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/acme/widgets/issues", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Build is broken", body["title"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number":17,"html_url":"https://github.test/acme/widgets/issues/17","title":"Build is broken","state":"open","node_id":"ignored"}`))
	}))
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{
		"action": "create_issue",
		"repo":   "acme/widgets",
		"title":  "Build is broken",
		"body":   "since this morning",
		"token":  "tok",
	}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.EqualValues(t, 17, data["number"])
	assert.Equal(t, "open", data["state"])
	assert.NotContains(t, data, "node_id", "responses are projected to a stable subset")
}

func TestRepoReadFileDecodesContent(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("hello world\n"))
	tool, cleanup := testRepoTool(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widgets/contents/docs/readme.md", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"content": encoded, "sha": "abc123", "size": 12,
		})
	}))
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{
		"action": "read_file",
		"repo":   "acme/widgets",
		"path":   "docs/readme.md",
		"token":  "tok",
	}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, "hello world\n", data["content"])
	assert.Equal(t, "abc123", data["sha"])
}

func TestRepoWriteFileUpdatesExisting(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/widgets/contents/notes.txt", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"sha": "oldsha"})
	})
	mux.HandleFunc("PUT /repos/acme/widgets/contents/notes.txt", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "oldsha", body["sha"], "update must carry the existing blob sha")
		decoded, err := base64.StdEncoding.DecodeString(body["content"].(string))
		require.NoError(t, err)
		assert.Equal(t, "new text", string(decoded))
		assert.Equal(t, "Update notes.txt", body["message"], "default commit message")
		json.NewEncoder(w).Encode(map[string]any{
			"commit": map[string]any{"sha": "newsha", "html_url": "https://github.test/c/newsha"},
		})
	})
	tool, cleanup := testRepoTool(mux)
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{
		"action":  "write_file",
		"repo":    "acme/widgets",
		"path":    "notes.txt",
		"content": "new text",
		"token":   "tok",
	}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, "newsha", data["commit_sha"])
}

func TestRepoWriteFileCreatesNew(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/widgets/contents/fresh.txt", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})
	mux.HandleFunc("PUT /repos/acme/widgets/contents/fresh.txt", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "sha", "create must not send a sha")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"commit": map[string]any{"sha": "first", "html_url": "u"},
		})
	})
	tool, cleanup := testRepoTool(mux)
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{
		"action":  "write_file",
		"repo":    "acme/widgets",
		"path":    "fresh.txt",
		"content": "x",
		"message": "add fresh",
		"token":   "tok",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "first", resultData(t, res)["commit_sha"])
}

func TestRepoAPIErrorIsToolFailure(t *testing.T) {
	tool, cleanup := testRepoTool(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Validation Failed"}`, http.StatusUnprocessableEntity)
	}))
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{
		"action": "create_repo",
		"name":   "dup",
		"token":  "tok",
	}, nil)
	require.NoError(t, err, "API-level errors are tool failures, not transport errors")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "422")
}

func TestSplitRepo(t *testing.T) {
	owner, repo, err := splitRepo("acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", repo)

	for _, bad := range []string{"", "acme", "/widgets", "acme/"} {
		_, _, err := splitRepo(bad)
		assert.Error(t, err, bad)
	}
}
