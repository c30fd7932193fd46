package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Record is the persisted form of one session's history.
type Record struct {
	ID        string   `json:"id"`
	Lessons   []string `json:"lessons"`
	UpdatedAt string   `json:"updatedAt"`
}

// FileStore keeps session histories in a single JSON file. Reads are
// best-effort: a missing or corrupt file behaves like an empty store.
// File access is serialized so management subcommands and a running
// curation cannot clobber each other.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath is ~/.vibecheck/sessions.json, falling back to the
// working directory when the home directory is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vibecheck", "sessions.json")
	}
	return filepath.Join(home, ".vibecheck", "sessions.json")
}

// History loads a session's lessons, empty when the session is new.
func (s *FileStore) History(id string) *History {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.load()
	return NewHistory(records[id].Lessons...)
}

// Save persists a session's history, stamping the update time.
func (s *FileStore) Save(id string, h *History) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.load()
	records[id] = Record{
		ID:        id,
		Lessons:   h.Lessons(),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return s.persist(records)
}

// List returns all persisted sessions, most recently updated first.
func (s *FileStore) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.load()
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt > out[j].UpdatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Clear drops every persisted session.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStore) load() map[string]Record {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]Record{}
	}
	var out map[string]Record
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]Record{}
	}
	if out == nil {
		return map[string]Record{}
	}
	return out
}

func (s *FileStore) persist(records map[string]Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}
