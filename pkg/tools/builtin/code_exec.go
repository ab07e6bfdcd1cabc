package builtin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

const (
	// maxExecTimeout bounds one execution; requests above it are clamped.
	maxExecTimeout = 300 * time.Second
	// killGracePeriod is how long a cancelled subprocess gets between
	// SIGTERM and SIGKILL.
	killGracePeriod = 5 * time.Second
	// inlineCodeLimit: code longer than this goes through a temp file
	// instead of an interpreter argument.
	inlineCodeLimit = 2048
	// maxOutputBytes caps captured stdout/stderr each.
	maxOutputBytes = 1 << 20
)

// interpreter describes how to run code for one language.
type interpreter struct {
	command    string
	inlineFlag string
	fileExt    string
}

var interpreters = map[string]interpreter{
	"python":     {command: "python3", inlineFlag: "-c", fileExt: ".py"},
	"node":       {command: "node", inlineFlag: "-e", fileExt: ".js"},
	"bash":       {command: "bash", inlineFlag: "-c", fileExt: ".sh"},
	"sh":         {command: "sh", inlineFlag: "-c", fileExt: ".sh"},
	"powershell": {command: "pwsh", inlineFlag: "-Command", fileExt: ".ps1"},
}

// CodeExecutionTool runs snippets in a subprocess rooted at the project
// directory. Cancellation and timeout kill the whole process group.
type CodeExecutionTool struct {
	validator *PathValidator
}

// NewCodeExecutionTool creates the code_execution tool.
func NewCodeExecutionTool(v *PathValidator) *CodeExecutionTool {
	return &CodeExecutionTool{validator: v}
}

func (t *CodeExecutionTool) Definition() models.ToolDefinition {
	langs := make([]string, 0, len(interpreters))
	for l := range interpreters {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return models.ToolDefinition{
		Name:          "code_execution",
		Description:   "Execute a code snippet in a subprocess and capture its output. The working directory is the project directory.",
		Category:      models.CategoryCode,
		IsDestructive: true,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"language": map[string]any{
					"type":        "string",
					"enum":        langs,
					"description": "Interpreter to run the code with",
				},
				"code": map[string]any{
					"type":        "string",
					"description": "Source code to execute",
				},
				"timeout_s": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     300,
					"description": "Execution timeout in seconds (default 300)",
				},
			},
			"required": []string{"language", "code"},
		},
	}
}

func (t *CodeExecutionTool) Execute(ctx context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Language string `json:"language"`
		Code     string `json:"code"`
		TimeoutS int    `json:"timeout_s"`
	}
	if err := decodeParams(params, &args); err != nil {
		return nil, err
	}
	interp, ok := interpreters[strings.ToLower(args.Language)]
	if !ok {
		return failure("unsupported language %q", args.Language), nil
	}
	if args.Code == "" {
		return failure("code is empty"), nil
	}

	timeout := maxExecTimeout
	if args.TimeoutS > 0 && time.Duration(args.TimeoutS)*time.Second < maxExecTimeout {
		timeout = time.Duration(args.TimeoutS) * time.Second
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var cmdArgs []string
	if len(args.Code) <= inlineCodeLimit {
		cmdArgs = []string{interp.inlineFlag, args.Code}
	} else {
		tmp, err := os.CreateTemp("", "praxis-exec-*"+interp.fileExt)
		if err != nil {
			return nil, fmt.Errorf("create temp file for code: %w", err)
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.WriteString(args.Code); err != nil {
			tmp.Close()
			return nil, fmt.Errorf("write temp file for code: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return nil, fmt.Errorf("close temp file for code: %w", err)
		}
		cmdArgs = []string{tmp.Name()}
	}

	cmd := exec.CommandContext(execCtx, interp.command, cmdArgs...)
	cmd.Dir = t.validator.Root()
	// Own process group so cancellation reaches grandchildren too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = killGracePeriod

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitedWriter{w: &stdout, limit: maxOutputBytes}
	cmd.Stderr = &limitedWriter{w: &stderr, limit: maxOutputBytes}

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	timedOut := execCtx.Err() == context.DeadlineExceeded
	if execCtx.Err() != nil && cmd.Process != nil {
		// Sweep group survivors left past the grace period.
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !timedOut && !errors.As(runErr, &exitErr) {
			// Spawn failure (interpreter missing etc), not a code failure.
			return nil, fmt.Errorf("run %s: %w", interp.command, runErr)
		}
	}

	return &models.ToolResult{
		Success: runErr == nil && !timedOut,
		Data: map[string]any{
			"exit_code":  exitCode,
			"stdout":     stdout.String(),
			"stderr":     stderr.String(),
			"duration_s": elapsed.Seconds(),
			"timed_out":  timedOut,
			"language":   strings.ToLower(args.Language),
		},
	}, nil
}

// limitedWriter discards bytes past limit; subprocesses must not balloon a
// step result.
type limitedWriter struct {
	w     *bytes.Buffer
	limit int
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	if lw.w.Len() >= lw.limit {
		return len(p), nil
	}
	room := lw.limit - lw.w.Len()
	if len(p) > room {
		lw.w.Write(p[:room])
		return len(p), nil
	}
	return lw.w.Write(p)
}
