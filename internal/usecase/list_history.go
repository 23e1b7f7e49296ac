package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/lintgate/internal/domain"
)

// ListHistoryInput contains the parameters for listing past runs.
type ListHistoryInput struct {
	Limit int // maximum number of runs; <= 0 means all
}

// ListHistoryOutput contains past gate runs, newest first.
type ListHistoryOutput struct {
	Runs []*domain.RunRecord
}

// ListHistory is the use case for listing recorded gate runs.
type ListHistory struct {
	history domain.HistoryStore
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(history domain.HistoryStore) *ListHistory {
	return &ListHistory{history: history}
}

// Execute returns the recorded runs.
func (uc *ListHistory) Execute(_ context.Context, in ListHistoryInput) (*ListHistoryOutput, error) {
	runs, err := uc.history.List(in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return &ListHistoryOutput{Runs: runs}, nil
}
