// Package store persists the business catalog in SQLite so it can be
// curated outside the binary. Guest sessions are never stored.
package store

import (
	"context"
	"errors"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// ErrEmptyCatalog is returned when the database holds no businesses.
var ErrEmptyCatalog = errors.New("catalog is empty")

// SearchParams holds parameters for searching businesses.
type SearchParams struct {
	Query    string
	Cluster  model.Cluster
	Category model.Category
	Limit    int
}

// Store defines the catalog storage interface.
type Store interface {
	// ImportCatalog replaces the stored catalog. Returns the number of businesses written.
	ImportCatalog(ctx context.Context, c *catalog.Catalog) (int, error)

	// LoadCatalog rebuilds the stored catalog in its original order.
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)

	// Search finds businesses by free text and optional cluster or category.
	Search(ctx context.Context, p SearchParams) ([]model.Business, error)

	// Close closes the store.
	Close() error
}
