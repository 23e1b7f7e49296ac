// Package executor provides command execution functionality.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/runoshun/lintgate/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Run executes the command with the given output writers and returns its
// exit code. The child's diagnostics flow through stdout/stderr untouched.
func (c *Client) Run(ctx context.Context, cmd domain.ExecCommand, stdout, stderr io.Writer) (int, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		execCmd.Env = cmd.Env
	}
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr

	err := execCmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("run %s: %w", cmd.Program, err)
}

// LookTool resolves a program name, preferring binDir over the inherited
// PATH. This matches activation semantics: the environment's bin directory
// shadows the system PATH but does not replace it.
func (c *Client) LookTool(binDir, program string) (string, error) {
	if binDir != "" {
		candidate := filepath.Join(binDir, program)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(program)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrToolNotInstalled, program)
	}
	return path, nil
}
