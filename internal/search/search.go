// Package search serializes lookup interest: a new search supersedes
// any in-flight one, so a slow response can never overwrite a newer
// result list.
package search

import (
	"context"
	"errors"
	"sync"

	"github.com/ramasheshasai/Calorie-Builder/internal/model"
)

// ErrSuperseded reports that a newer search was issued while this one
// was in flight; its response was discarded.
var ErrSuperseded = errors.New("search superseded by a newer request")

// Provider is the external lookup capability.
type Provider interface {
	Search(ctx context.Context, query string) ([]model.FoodRecord, error)
}

// Searcher wraps a Provider with latest-request-wins semantics using a
// monotonically increasing generation counter compared at response
// time.
type Searcher struct {
	provider Provider

	mu      sync.Mutex
	gen     uint64
	results []model.FoodRecord
}

func New(provider Provider) *Searcher {
	return &Searcher{provider: provider}
}

// Search runs the lookup and installs its results unless a newer search
// started meanwhile, in which case the stale response is dropped and
// ErrSuperseded returned.
func (s *Searcher) Search(ctx context.Context, query string) ([]model.FoodRecord, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	records, err := s.provider.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	s.results = records
	return records, nil
}

// Results returns the latest installed result list.
func (s *Searcher) Results() []model.FoodRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}
