package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/port"
)

const fileName = "videos.json"

// Store keeps the catalog as a JSON array, newest video first. Several
// processes may share the file; each works on its own in-memory copy.
type Store struct {
	mu     sync.RWMutex
	saveMu sync.Mutex
	path   string
	videos []*domain.Video
}

func NewStore(dataDir string) (*Store, error) {
	store := &Store{
		path: filepath.Join(dataDir, fileName),
	}

	if err := store.Refresh(); err != nil {
		return nil, err
	}

	return store, nil
}

// Refresh replaces the in-memory list with the file contents. A missing or
// empty file is an empty catalog.
func (s *Store) Refresh() error {
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read catalog: %w", err)
	}

	var videos []*domain.Video
	if len(data) > 0 {
		if err := json.Unmarshal(data, &videos); err != nil {
			return fmt.Errorf("decode catalog: %w", err)
		}
	}

	s.mu.Lock()
	s.videos = videos
	s.mu.Unlock()
	return nil
}

// Save writes the in-memory list through a temp file in the same directory,
// then renames it over the catalog.
func (s *Store) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	videos := s.videos
	if videos == nil {
		videos = []*domain.Video{}
	}
	data, err := json.MarshalIndent(videos, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp catalog: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

func (s *Store) FindByVideoID(videoID string) (*domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.videos {
		if v.VideoID == videoID {
			return v.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) Videos() []*domain.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Video, 0, len(s.videos))
	for _, v := range s.videos {
		out = append(out, v.Clone())
	}
	return out
}

// Put replaces the entry with the same VideoID, or prepends v when it is new.
func (s *Store) Put(v *domain.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := v.Clone()
	for i, existing := range s.videos {
		if existing.VideoID == v.VideoID {
			s.videos[i] = c
			return
		}
	}
	s.videos = append([]*domain.Video{c}, s.videos...)
}

var _ port.Catalog = (*Store)(nil)
