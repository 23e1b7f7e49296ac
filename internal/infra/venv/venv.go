// Package venv activates pre-built Python virtual environments.
package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/lintgate/internal/domain"
)

// Client implements domain.EnvActivator interface.
type Client struct{}

// NewClient creates a new environment activator client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.EnvActivator interface.
var _ domain.EnvActivator = (*Client)(nil)

// Activate validates the virtualenv under projectDir and returns the
// activated process environment. The environment must be pre-built;
// activation never creates or populates it.
func (c *Client) Activate(projectDir, venvPath string) (*domain.ActivatedEnv, error) {
	if venvPath == "" {
		venvPath = domain.DefaultVenvDir
	}
	venvDir := venvPath
	if !filepath.IsAbs(venvDir) {
		venvDir = filepath.Join(projectDir, venvPath)
	}

	info, err := os.Stat(venvDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrVenvNotFound, venvDir)
	}

	binDir := domain.VenvBinDir(venvDir)
	python := filepath.Join(binDir, "python")
	if _, err := os.Stat(python); err != nil {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrVenvNotFound, python)
	}

	return &domain.ActivatedEnv{
		VenvDir: venvDir,
		BinDir:  binDir,
		Env:     activate(os.Environ(), venvDir, binDir),
	}, nil
}

// activate mirrors what the venv's bin/activate script does to the shell:
// prepend the bin directory to PATH, set VIRTUAL_ENV, drop PYTHONHOME.
func activate(base []string, venvDir, binDir string) []string {
	env := make([]string, 0, len(base)+2)
	pathSet := false
	for _, kv := range base {
		switch {
		case strings.HasPrefix(kv, "PYTHONHOME="), strings.HasPrefix(kv, "VIRTUAL_ENV="):
			continue
		case strings.HasPrefix(kv, "PATH="):
			env = append(env, "PATH="+binDir+string(os.PathListSeparator)+strings.TrimPrefix(kv, "PATH="))
			pathSet = true
		default:
			env = append(env, kv)
		}
	}
	if !pathSet {
		env = append(env, "PATH="+binDir)
	}
	env = append(env, "VIRTUAL_ENV="+venvDir)
	return env
}
