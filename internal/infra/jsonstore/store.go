// Package jsonstore provides a JSON file-based implementation of HistoryStore.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/lintgate/internal/domain"
)

// storeData represents the JSON file structure.
type storeData struct {
	Runs []*domain.RunRecord `json:"runs"`
	Meta meta                `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextRunID int `json:"nextRunID"`
}

// Store implements domain.HistoryStore using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// Ensure Store implements domain.HistoryStore.
var _ domain.HistoryStore = (*Store)(nil)

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Append stores a run record and returns its assigned ID.
func (s *Store) Append(rec *domain.RunRecord) (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextRunID
		data.Meta.NextRunID++
		rec.ID = id
		data.Runs = append(data.Runs, rec)
		return nil
	})
	return id, err
}

// List returns up to limit records, newest first. limit <= 0 means all.
func (s *Store) List(limit int) ([]*domain.RunRecord, error) {
	var runs []*domain.RunRecord
	err := s.withLock(func(data *storeData) error {
		// Records are appended in order; reverse for newest first
		for i := len(data.Runs) - 1; i >= 0; i-- {
			runs = append(runs, data.Runs[i])
			if limit > 0 && len(runs) == limit {
				break
			}
		}
		return nil
	})
	return runs, err
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeData{Meta: meta{NextRunID: 1}}, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse history file: %w", err)
	}

	if data.Meta.NextRunID == 0 {
		data.Meta.NextRunID = 1
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
