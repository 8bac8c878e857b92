package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"
	"sync"
	"time"

	"guessduel/internal/logger"
)

// Entry is one leaderboard row. Lower score (fewer attempts) ranks higher.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Store keeps the top-N scores: append, sort ascending, truncate, save.
type Store interface {
	Record(ctx context.Context, name string, score int) ([]Entry, error)
	Top(ctx context.Context) ([]Entry, error)
}

// FileStore persists the leaderboard as a JSON array in a flat file.
type FileStore struct {
	mu      sync.Mutex
	path    string
	size    int
	entries []Entry
}

// NewFileStore loads the score file if present. A missing or unreadable
// file starts an empty leaderboard rather than failing startup.
func NewFileStore(path string, size int) *FileStore {
	s := &FileStore{path: path, size: size}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not read score file, starting empty", "path", path, "error", err)
		}
		return s
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		logger.Warn("could not parse score file, starting empty", "path", path, "error", err)
		s.entries = nil
	}

	return s
}

func (s *FileStore) Record(_ context.Context, name string, score int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage the new ranking and commit it to memory only once the file
	// write succeeds, so a failed save leaves Top unchanged.
	entries := make([]Entry, 0, len(s.entries)+1)
	entries = append(entries, s.entries...)
	entries = append(entries, Entry{
		Name:  name,
		Score: score,
		Date:  time.Now().Format("2006-01-02"),
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})
	if len(entries) > s.size {
		entries = entries[:s.size]
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	s.entries = entries

	return s.top(), nil
}

func (s *FileStore) Top(_ context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top(), nil
}

func (s *FileStore) top() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *FileStore) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
