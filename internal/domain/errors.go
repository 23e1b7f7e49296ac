package domain

import "errors"

// Domain errors.
var (
	ErrProjectNotFound  = errors.New("project directory not found")
	ErrVenvNotFound     = errors.New("virtualenv not found (build the environment before running the gate)")
	ErrToolNotDefined   = errors.New("lint tool not defined")
	ErrToolNotInstalled = errors.New("lint tool not installed in environment")
	ErrNoTools          = errors.New("no lint tools configured")
	ErrLintFindings     = errors.New("lint findings present")
	ErrNotGitRepository = errors.New("not a git repository (required for --changed)")
	ErrConfigExists     = errors.New("config file already exists")
)
