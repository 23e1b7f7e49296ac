// Package git detects changed files via the enclosing git worktree.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/lintgate/internal/domain"
)

// Client implements domain.ChangeDetector interface.
type Client struct{}

// NewClient creates a new change detector client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.ChangeDetector interface.
var _ domain.ChangeDetector = (*Client)(nil)

// ChangedFiles returns absolute paths of files with staged, unstaged or
// untracked changes in the repository enclosing dir. Deleted files are
// excluded since they cannot be linted.
func (c *Client) ChangedFiles(dir string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("get worktree status: %w", err)
	}

	root := wt.Filesystem.Root()
	var files []string
	for path, st := range status {
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(path)))
	}

	sort.Strings(files)
	return files, nil
}
