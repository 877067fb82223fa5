package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"briefdesk/internal/model"
)

// FileStorage keeps the article list in one JSON file. A missing file is an
// empty list; there is no schema versioning, so an incompatible shape
// surfaces as zero-valued fields.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]model.Article, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var articles []model.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return articles, nil
}

func (f *FileStorage) Save(articles []model.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// MemoryStorage is the in-memory Storage used in tests.
type MemoryStorage struct {
	articles []model.Article
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]model.Article, error) {
	return m.articles, nil
}

func (m *MemoryStorage) Save(articles []model.Article) error {
	m.articles = articles
	return nil
}
