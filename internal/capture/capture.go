// Package capture persists rendered frames with their metadata so a
// snapshot can be inspected or replayed through cat later.
package capture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	MaxIters   int       `json:"max_iters"`
	Seed       uint64    `json:"seed"`
	ParamRe    float64   `json:"param_re"`
	ParamIm    float64   `json:"param_im"`
	Directives int       `json:"directives"`
}

// Save writes one frame plus its metadata and returns the capture id.
func (s *Store) Save(meta Metadata, frame []byte) (string, error) {
	id := fmt.Sprintf("frame_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta.ID = id
	meta.Timestamp = time.Now()

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "meta.json"), data, 0644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "frame.ans"), frame, 0644); err != nil {
		return "", err
	}
	return id, nil
}

// Load reads the metadata for a capture id.
func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "meta.json"))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrame reads the raw frame bytes for a capture id.
func (s *Store) LoadFrame(id string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.baseDir, id, "frame.ans"))
}

// List returns metadata for all captures, newest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var metas []Metadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip partial captures
		}
		metas = append(metas, *meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp.After(metas[j].Timestamp)
	})
	return metas, nil
}
