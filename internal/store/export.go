package store

import (
	"context"
	"fmt"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
)

// ExportDocument returns the stored catalog in its serialized form.
func (s *SQLiteStore) ExportDocument(ctx context.Context) (catalog.Document, error) {
	c, err := s.LoadCatalog(ctx)
	if err != nil {
		return catalog.Document{}, err
	}
	return c.Document(), nil
}

// ImportDocument validates d and replaces the stored catalog with it.
func (s *SQLiteStore) ImportDocument(ctx context.Context, d catalog.Document) (int, error) {
	c, err := catalog.FromDocument(d)
	if err != nil {
		return 0, fmt.Errorf("invalid catalog document: %w", err)
	}
	return s.ImportCatalog(ctx, c)
}
