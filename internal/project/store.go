package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"storyreel/internal/brief"
	"storyreel/internal/fileutil"
)

// ErrNotFound marks lookups for project ids the store has never seen.
var ErrNotFound = errors.New("project not found")

const recordExtension = ".json"

// Store persists project records as one JSON file per project id.
type Store struct {
	root string
	lock *flock.Flock
}

// NewStore creates the root directory if needed and prepares the write lock.
func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("project store root must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create project store root %q: %w", root, err)
	}
	return &Store{
		root: root,
		lock: flock.New(filepath.Join(root, ".storyreel.lock")),
	}, nil
}

// Root returns the directory backing the store.
func (s *Store) Root() string {
	return s.root
}

// Create validates the brief, assigns a fresh id, and persists the record.
func (s *Store) Create(b brief.Brief) (*Project, error) {
	if err := brief.Validate(b); err != nil {
		return nil, err
	}
	p := &Project{
		ID:        uuid.NewString(),
		Brief:     b,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes a project record under the lock, via temp file and rename so
// readers never observe a partial record.
func (s *Store) Save(p *Project) error {
	if p == nil {
		return errors.New("project is nil")
	}
	path, err := s.pathFor(p.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project %s: %w", p.ID, err)
	}
	data = append(data, '\n')

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock project store: %w", err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("store project %s: %w", p.ID, err)
	}
	return nil
}

// Load reads the record for a project id.
func (s *Store) Load(id string) (*Project, error) {
	path, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read project %s: %w", id, err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", id, err)
	}
	return &p, nil
}

// List returns all stored projects ordered by creation time, then id.
func (s *Store) List() ([]*Project, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read project store: %w", err)
	}

	projects := make([]*Project, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, recordExtension) {
			continue
		}
		p, err := s.Load(strings.TrimSuffix(name, recordExtension))
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.Before(projects[j].CreatedAt)
		}
		return projects[i].ID < projects[j].ID
	})
	return projects, nil
}

func (s *Store) pathFor(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty project id", ErrNotFound)
	}
	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return filepath.Join(s.root, id+recordExtension), nil
}
