package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newSeededStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := newTestStore(t)
	if _, err := s.ImportCatalog(context.Background(), catalog.Default()); err != nil {
		t.Fatalf("import: %v", err)
	}
	return s
}

func TestImportAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	n, err := s.ImportCatalog(ctx, catalog.Default())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 17 {
		t.Errorf("expected 17 businesses imported, got %d", n)
	}

	c, err := s.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(c.Businesses(), catalog.Default().Businesses()) {
		t.Error("loaded businesses differ from imported ones")
	}
	if !reflect.DeepEqual(c.Signatures(), catalog.Default().Signatures()) {
		t.Error("loaded signatures differ from imported ones")
	}
}

func TestImportReplaces(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	small, err := catalog.New([]model.Business{
		{Name: "Pop-up Gallery", Category: model.CategoryArts, Cluster: model.ClusterTownCenter, Rating: 4.2},
	}, nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if _, err := s.ImportCatalog(ctx, small); err != nil {
		t.Fatalf("import: %v", err)
	}

	c, err := s.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 business, got %d", c.Len())
	}
	b, _ := c.Business("Pop-up Gallery")
	if b.Hours != nil {
		t.Errorf("expected nil hours to survive the round trip, got %+v", b.Hours)
	}
	if len(c.Signatures()) != 0 {
		t.Errorf("expected signatures cleared, got %d", len(c.Signatures()))
	}

	// Old rows must be gone from the search index too.
	res, err := s.Search(ctx, SearchParams{Query: "lavender"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res) != 0 {
		t.Errorf("expected stale index entries removed, got %d", len(res))
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.LoadCatalog(context.Background()); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	doc, err := s.ExportDocument(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	other := newTestStore(t)
	n, err := other.ImportDocument(ctx, doc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != len(doc.Businesses) {
		t.Errorf("expected %d imported, got %d", len(doc.Businesses), n)
	}
}

func TestImportDocument_Invalid(t *testing.T) {
	s := newTestStore(t)
	doc := catalog.Document{Businesses: []model.Business{{Name: "", Category: model.CategoryFood}}}
	if _, err := s.ImportDocument(context.Background(), doc); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer s.Close()
	if _, err := s.ImportCatalog(ctx, catalog.Default()); err != nil {
		t.Fatalf("import: %v", err)
	}

	st, err := s.Stats(ctx, path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Businesses != 17 || st.Signatures != 5 {
		t.Errorf("expected 17 businesses and 5 signatures, got %d and %d", st.Businesses, st.Signatures)
	}
	if len(st.Clusters) != 4 {
		t.Fatalf("expected 4 clusters, got %d", len(st.Clusters))
	}
	if st.Clusters[0].Cluster != string(model.ClusterLodge) || st.Clusters[0].Count != 1 {
		t.Errorf("unexpected first cluster %+v", st.Clusters[0])
	}
	if st.Clusters[2].Cluster != string(model.ClusterWineRegion) || st.Clusters[2].Count != 5 {
		t.Errorf("unexpected wine cluster %+v", st.Clusters[2])
	}
}

func TestStats_ClosedStore(t *testing.T) {
	s := newSeededStore(t)
	s.Close()
	if _, err := s.Stats(context.Background(), ""); err == nil {
		t.Error("expected error from closed store")
	}
}
