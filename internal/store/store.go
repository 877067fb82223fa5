package store

import (
	"errors"
	"fmt"
	"sync"

	"briefdesk/internal/model"

	"github.com/google/uuid"
)

// Direction selects which neighbor a reorder swaps with.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

var ErrNotFound = errors.New("article not found")

// Storage persists the whole ordered article list. Mutations always write
// the full list back, mirroring the single browser-storage key the UI used.
type Storage interface {
	Load() ([]model.Article, error)
	Save(articles []model.Article) error
}

// Store is the ordered article list. Sequence order is the authoritative
// newsletter order. A mutex guards it because HTTP handlers share one
// instance.
type Store struct {
	mu       sync.Mutex
	storage  Storage
	articles []model.Article
}

func New(storage Storage) (*Store, error) {
	articles, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	return &Store{storage: storage, articles: articles}, nil
}

// List returns a copy of the ordered article list.
func (s *Store) List() []model.Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

func (s *Store) Get(id string) (model.Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.articles {
		if a.ID == id {
			return a, true
		}
	}
	return model.Article{}, false
}

// Add appends the article, assigning an ID when the caller did not.
func (s *Store) Add(a model.Article) (model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.articles = append(s.articles, a)
	if err := s.storage.Save(s.articles); err != nil {
		s.articles = s.articles[:len(s.articles)-1]
		return model.Article{}, err
	}
	return a, nil
}

// Update replaces the record with the given ID in place.
func (s *Store) Update(id string, a model.Article) (model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			a.ID = id
			prev := s.articles[i]
			s.articles[i] = a
			if err := s.storage.Save(s.articles); err != nil {
				s.articles[i] = prev
				return model.Article{}, err
			}
			return a, nil
		}
	}
	return model.Article{}, ErrNotFound
}

// Remove deletes exactly the record with the given ID, preserving the
// relative order of the rest.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			return s.storage.Save(s.articles)
		}
	}
	return ErrNotFound
}

func (s *Store) RemoveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles = nil
	return s.storage.Save(s.articles)
}

// Reorder swaps the article at index with its neighbor in the given
// direction. Moving the first article up or the last down is a no-op.
func (s *Store) Reorder(index int, direction Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.articles) {
		return ErrNotFound
	}

	switch direction {
	case DirectionUp:
		if index == 0 {
			return nil
		}
		s.articles[index], s.articles[index-1] = s.articles[index-1], s.articles[index]
	case DirectionDown:
		if index == len(s.articles)-1 {
			return nil
		}
		s.articles[index], s.articles[index+1] = s.articles[index+1], s.articles[index]
	default:
		return fmt.Errorf("unknown direction %q", direction)
	}

	return s.storage.Save(s.articles)
}

// IndexOf resolves an article ID to its current position.
func (s *Store) IndexOf(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
