package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS businesses (
		id            TEXT PRIMARY KEY,
		seq           INTEGER NOT NULL UNIQUE,
		name          TEXT NOT NULL UNIQUE,
		type          TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT '',
		rating        REAL NOT NULL DEFAULT 0,
		price_range   TEXT NOT NULL DEFAULT '',
		category      TEXT NOT NULL,
		cluster       TEXT NOT NULL,
		local_insight TEXT NOT NULL DEFAULT '',
		drive_time    TEXT NOT NULL DEFAULT '',
		open_hour     INTEGER,
		close_hour    INTEGER,
		time_slots    TEXT,
		imported_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_businesses_cluster ON businesses(cluster, category);

	CREATE TABLE IF NOT EXISTS signatures (
		id               TEXT PRIMARY KEY,
		seq              INTEGER NOT NULL UNIQUE,
		name             TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		duration         TEXT NOT NULL DEFAULT '',
		price_range      TEXT NOT NULL DEFAULT '',
		location         TEXT NOT NULL DEFAULT '',
		distance         TEXT NOT NULL DEFAULT '',
		booking_required INTEGER NOT NULL DEFAULT 0,
		imported_at      TEXT NOT NULL
	);

	CREATE VIRTUAL TABLE IF NOT EXISTS businesses_fts USING fts5(
		name,
		type,
		description,
		local_insight,
		content=businesses,
		content_rowid=rowid
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// FTS5 triggers for automatic sync
	triggers := []string{
		`CREATE TRIGGER IF NOT EXISTS businesses_ai AFTER INSERT ON businesses BEGIN
			INSERT INTO businesses_fts(rowid, name, type, description, local_insight)
			VALUES (new.rowid, new.name, new.type, new.description, new.local_insight);
		END`,
		`CREATE TRIGGER IF NOT EXISTS businesses_ad AFTER DELETE ON businesses BEGIN
			INSERT INTO businesses_fts(businesses_fts, rowid, name, type, description, local_insight)
			VALUES ('delete', old.rowid, old.name, old.type, old.description, old.local_insight);
		END`,
		`CREATE TRIGGER IF NOT EXISTS businesses_au AFTER UPDATE ON businesses BEGIN
			INSERT INTO businesses_fts(businesses_fts, rowid, name, type, description, local_insight)
			VALUES ('delete', old.rowid, old.name, old.type, old.description, old.local_insight);
			INSERT INTO businesses_fts(rowid, name, type, description, local_insight)
			VALUES (new.rowid, new.name, new.type, new.description, new.local_insight);
		END`,
	}
	for _, t := range triggers {
		if _, err := s.db.Exec(t); err != nil {
			return fmt.Errorf("create trigger: %w", err)
		}
	}
	return nil
}

// ImportCatalog replaces every stored business and signature experience with
// the contents of c in a single transaction.
func (s *SQLiteStore) ImportCatalog(ctx context.Context, c *catalog.Catalog) (int, error) {
	now := time.Now().UTC()
	stamp := now.Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM businesses`); err != nil {
		return 0, fmt.Errorf("clear businesses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM signatures`); err != nil {
		return 0, fmt.Errorf("clear signatures: %w", err)
	}

	businesses := c.Businesses()
	for i, b := range businesses {
		var openHour, closeHour sql.NullInt64
		var slots sql.NullString
		if b.Hours != nil {
			openHour = sql.NullInt64{Int64: int64(b.Hours.Open), Valid: true}
			closeHour = sql.NullInt64{Int64: int64(b.Hours.Close), Valid: true}
			raw, err := json.Marshal(b.Hours.Slots)
			if err != nil {
				return 0, fmt.Errorf("encode slots for %q: %w", b.Name, err)
			}
			slots = sql.NullString{String: string(raw), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO businesses (id, seq, name, type, description, rating, price_range, category, cluster,
			                         local_insight, drive_time, open_hour, close_hour, time_slots, imported_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.newID(now), i, b.Name, b.Type, b.Description, b.Rating, string(b.Price),
			string(b.Category), string(b.Cluster), b.LocalInsight, b.DriveTime,
			openHour, closeHour, slots, stamp)
		if err != nil {
			return 0, fmt.Errorf("insert business %q: %w", b.Name, err)
		}
	}

	for i, sig := range c.Signatures() {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO signatures (id, seq, name, description, duration, price_range, location, distance,
			                         booking_required, imported_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sig.ID, i, sig.Name, sig.Description, sig.Duration, string(sig.Price),
			sig.Location, sig.Distance, sig.BookingRequired, stamp)
		if err != nil {
			return 0, fmt.Errorf("insert signature %q: %w", sig.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(businesses), nil
}

// LoadCatalog rebuilds the stored catalog in import order.
func (s *SQLiteStore) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	businesses, err := s.queryBusinesses(ctx, `SELECT `+businessColumns("")+` FROM businesses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load businesses: %w", err)
	}
	if len(businesses) == 0 {
		return nil, ErrEmptyCatalog
	}

	sigs, err := s.querySignatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("load signatures: %w", err)
	}

	c, err := catalog.New(businesses, sigs)
	if err != nil {
		return nil, fmt.Errorf("rebuild catalog: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var businessFields = []string{
	"name", "type", "description", "rating", "price_range", "category", "cluster",
	"local_insight", "drive_time", "open_hour", "close_hour", "time_slots",
}

// businessColumns lists the scanned columns, qualified by alias when set.
func businessColumns(alias string) string {
	if alias == "" {
		return strings.Join(businessFields, ", ")
	}
	return alias + "." + strings.Join(businessFields, ", "+alias+".")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row scanner) (model.Business, error) {
	var b model.Business
	var price, category, cluster string
	var openHour, closeHour sql.NullInt64
	var slots sql.NullString

	err := row.Scan(
		&b.Name, &b.Type, &b.Description, &b.Rating, &price, &category, &cluster,
		&b.LocalInsight, &b.DriveTime, &openHour, &closeHour, &slots,
	)
	if err != nil {
		return b, err
	}

	b.Price = model.PriceTier(price)
	b.Category = model.Category(category)
	b.Cluster = model.Cluster(cluster)
	if openHour.Valid && closeHour.Valid {
		b.Hours = &model.Hours{Open: int(openHour.Int64), Close: int(closeHour.Int64)}
		if slots.Valid {
			if err := json.Unmarshal([]byte(slots.String), &b.Hours.Slots); err != nil {
				return b, fmt.Errorf("decode slots for %q: %w", b.Name, err)
			}
		}
	}
	return b, nil
}

func (s *SQLiteStore) queryBusinesses(ctx context.Context, query string, args ...interface{}) ([]model.Business, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) querySignatures(ctx context.Context) ([]model.SignatureExperience, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, duration, price_range, location, distance, booking_required
		 FROM signatures ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SignatureExperience
	for rows.Next() {
		var sig model.SignatureExperience
		var price string
		if err := rows.Scan(&sig.ID, &sig.Name, &sig.Description, &sig.Duration, &price,
			&sig.Location, &sig.Distance, &sig.BookingRequired); err != nil {
			return nil, err
		}
		sig.Price = model.PriceTier(price)
		out = append(out, sig)
	}
	return out, rows.Err()
}
