// Copyright Venturely Inc., 2026. All rights reserved.

// Package catalog persists the candidate entity and section spec catalogs
// in a SQLite database seeded from YAML.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/venturely/intel-engine/pkg/types"
)

// Store manages the catalog SQLite database. Runtime access is read-only;
// writes happen only through Import.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at cfg.Path, creating the
// schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("catalog path not configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entities (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			focus_areas TEXT,
			stage_min TEXT,
			stage_max TEXT,
			ticket TEXT,
			amount INTEGER,
			track_record TEXT,
			eligibility TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities(kind)`,
		`CREATE TABLE IF NOT EXISTS section_specs (
			id TEXT PRIMARY KEY,
			min_words INTEGER,
			max_words INTEGER,
			required_elements TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Candidates returns all entities of the given kind in catalog (insertion)
// order. The scorer relies on this order to break score ties.
func (s *Store) Candidates(ctx context.Context, kind types.EntityKind) ([]types.CandidateEntity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, focus_areas, stage_min, stage_max, ticket, amount, track_record, eligibility
		 FROM entities WHERE kind = ? ORDER BY rowid`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	var out []types.CandidateEntity
	for rows.Next() {
		var (
			e                              types.CandidateEntity
			kindStr, stageMin, stageMax    string
			focusJSON, trackJSON, eligJSON string
		)
		if err := rows.Scan(&e.ID, &e.Name, &kindStr, &focusJSON, &stageMin, &stageMax,
			&e.Ticket, &e.Amount, &trackJSON, &eligJSON); err != nil {
			return nil, fmt.Errorf("scanning entity row: %w", err)
		}
		e.Kind = types.EntityKind(kindStr)
		e.StageMin = types.Stage(stageMin)
		e.StageMax = types.Stage(stageMax)
		if err := decodeList(focusJSON, &e.FocusAreas); err != nil {
			return nil, fmt.Errorf("decoding focus areas for %s: %w", e.ID, err)
		}
		if err := decodeList(trackJSON, &e.TrackRecord); err != nil {
			return nil, fmt.Errorf("decoding track record for %s: %w", e.ID, err)
		}
		if err := decodeList(eligJSON, &e.Eligibility); err != nil {
			return nil, fmt.Errorf("decoding eligibility for %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SectionSpec returns the spec with the given id, or false when unknown.
func (s *Store) SectionSpec(ctx context.Context, id string) (types.SectionSpec, bool, error) {
	var (
		spec         types.SectionSpec
		elementsJSON string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, min_words, max_words, required_elements FROM section_specs WHERE id = ?`, id,
	).Scan(&spec.ID, &spec.MinWords, &spec.MaxWords, &elementsJSON)
	if err == sql.ErrNoRows {
		return types.SectionSpec{}, false, nil
	}
	if err != nil {
		return types.SectionSpec{}, false, fmt.Errorf("querying section spec: %w", err)
	}
	if err := decodeList(elementsJSON, &spec.RequiredElements); err != nil {
		return types.SectionSpec{}, false, fmt.Errorf("decoding required elements for %s: %w", id, err)
	}
	return spec, true, nil
}

// SectionSpecs returns all section specs ordered by id.
func (s *Store) SectionSpecs(ctx context.Context) ([]types.SectionSpec, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, min_words, max_words, required_elements FROM section_specs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying section specs: %w", err)
	}
	defer rows.Close()

	var out []types.SectionSpec
	for rows.Next() {
		var (
			spec         types.SectionSpec
			elementsJSON string
		)
		if err := rows.Scan(&spec.ID, &spec.MinWords, &spec.MaxWords, &elementsJSON); err != nil {
			return nil, fmt.Errorf("scanning spec row: %w", err)
		}
		if err := decodeList(elementsJSON, &spec.RequiredElements); err != nil {
			return nil, fmt.Errorf("decoding required elements for %s: %w", spec.ID, err)
		}
		out = append(out, spec)
	}
	return out, rows.Err()
}

func decodeList(raw string, dst *[]string) error {
	if raw == "" || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}
