package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// ftsPhrase quotes q as a single FTS5 phrase whose last token matches as a prefix.
func ftsPhrase(q string) string {
	return `"` + strings.ReplaceAll(q, `"`, `""`) + `"*`
}

// Search finds businesses whose name, type, description or local insight
// match the query. Results are in catalog order.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Business, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	var where []string
	var args []interface{}
	from := "businesses b"

	if q := strings.TrimSpace(p.Query); q != "" {
		from += " JOIN businesses_fts ON businesses_fts.rowid = b.rowid"
		where = append(where, "businesses_fts MATCH ?")
		args = append(args, ftsPhrase(q))
	}
	if p.Cluster != "" {
		where = append(where, "b.cluster = ?")
		args = append(args, string(p.Cluster))
	}
	if p.Category != "" {
		where = append(where, "b.category = ?")
		args = append(args, string(p.Category))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, businessColumns("b"), from)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY b.seq LIMIT ?"
	args = append(args, limit)

	results, err := s.queryBusinesses(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search businesses: %w", err)
	}
	return results, nil
}
