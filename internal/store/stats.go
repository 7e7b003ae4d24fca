package store

import (
	"context"
	"fmt"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string         `json:"db_path"`
	DBSizeBytes int64          `json:"db_size_bytes"`
	Businesses  int            `json:"businesses"`
	Signatures  int            `json:"signatures"`
	Clusters    []ClusterStats `json:"clusters"`
}

// ClusterStats holds per-cluster counts.
type ClusterStats struct {
	Cluster    string  `json:"cluster"`
	Count      int     `json:"count"`
	Categories int     `json:"categories"`
	AvgRating  float64 `json:"avg_rating"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM businesses`).Scan(&st.Businesses); err != nil {
		return st, fmt.Errorf("count businesses: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM signatures`).Scan(&st.Signatures); err != nil {
		return st, fmt.Errorf("count signatures: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT cluster, COUNT(*) AS cnt, COUNT(DISTINCT category) AS cats, AVG(rating)
		FROM businesses
		GROUP BY cluster ORDER BY MIN(seq)`)
	if err != nil {
		return st, fmt.Errorf("cluster stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cs ClusterStats
		if err := rows.Scan(&cs.Cluster, &cs.Count, &cs.Categories, &cs.AvgRating); err != nil {
			return st, fmt.Errorf("scan cluster stats: %w", err)
		}
		st.Clusters = append(st.Clusters, cs)
	}
	return st, rows.Err()
}
