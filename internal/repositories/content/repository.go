// Package content is the persistence boundary for rule content. The catalog
// sits on top and callers go through it; this layer only loads bundles.
package content

import (
	"context"

	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcontent -source=repository.go

// Repository loads the full rule-content bundle.
type Repository interface {
	GetContent(ctx context.Context) (*rulebook.Content, error)
}

// InMemoryRepository serves a fixed bundle. Production uses the seeded
// default; tests swap in narrow bundles.
type InMemoryRepository struct {
	content *rulebook.Content
}

// NewInMemoryRepository creates a repository serving the given bundle, or
// the seeded default content when nil.
func NewInMemoryRepository(bundle *rulebook.Content) *InMemoryRepository {
	if bundle == nil {
		bundle = rulebook.DefaultContent()
	}
	return &InMemoryRepository{content: bundle}
}

// GetContent returns the bundle.
func (r *InMemoryRepository) GetContent(_ context.Context) (*rulebook.Content, error) {
	return r.content, nil
}
