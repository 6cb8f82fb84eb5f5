// Copyright Venturely Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/venturely/intel-engine/pkg/types"
)

// seedFile is the YAML layout accepted by Import.
type seedFile struct {
	Entities     []types.CandidateEntity `yaml:"entities"`
	SectionSpecs []types.SectionSpec     `yaml:"section_specs"`
}

// ImportSummary holds counts from a catalog import run.
type ImportSummary struct {
	Entities int
	Specs    int
}

// Import loads a YAML seed file into the catalog. Entities are upserted by
// id, so importing the same file twice is idempotent and keeps the original
// insertion order. Progress lines are written to w.
func (s *Store) Import(ctx context.Context, seedPath string, w io.Writer) (ImportSummary, error) {
	data, err := os.ReadFile(seedPath)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("reading seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return ImportSummary{}, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, e := range seed.Entities {
		if e.ID == "" {
			return ImportSummary{}, fmt.Errorf("entity %d: missing id", i)
		}
		if e.Kind != types.KindInvestor && e.Kind != types.KindGrant {
			return ImportSummary{}, fmt.Errorf("entity %s: unknown kind %q", e.ID, e.Kind)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	entityStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entities (id, name, kind, focus_areas, stage_min, stage_max, ticket, amount, track_record, eligibility)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, kind=excluded.kind, focus_areas=excluded.focus_areas,
			stage_min=excluded.stage_min, stage_max=excluded.stage_max,
			ticket=excluded.ticket, amount=excluded.amount,
			track_record=excluded.track_record, eligibility=excluded.eligibility`)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("preparing entity upsert: %w", err)
	}
	defer entityStmt.Close()

	var summary ImportSummary
	for _, e := range seed.Entities {
		focusJSON, _ := json.Marshal(e.FocusAreas)
		trackJSON, _ := json.Marshal(e.TrackRecord)
		eligJSON, _ := json.Marshal(e.Eligibility)
		_, err := entityStmt.ExecContext(ctx,
			e.ID, e.Name, string(e.Kind), string(focusJSON),
			string(e.StageMin), string(e.StageMax),
			e.Ticket, e.Amount, string(trackJSON), string(eligJSON))
		if err != nil {
			return ImportSummary{}, fmt.Errorf("upserting entity %s: %w", e.ID, err)
		}
		summary.Entities++
	}

	specStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO section_specs (id, min_words, max_words, required_elements)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			min_words=excluded.min_words, max_words=excluded.max_words,
			required_elements=excluded.required_elements`)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("preparing spec upsert: %w", err)
	}
	defer specStmt.Close()

	for _, spec := range seed.SectionSpecs {
		if spec.ID == "" {
			return ImportSummary{}, fmt.Errorf("section spec missing id")
		}
		elementsJSON, _ := json.Marshal(spec.RequiredElements)
		_, err := specStmt.ExecContext(ctx,
			spec.ID, spec.MinWords, spec.MaxWords, string(elementsJSON))
		if err != nil {
			return ImportSummary{}, fmt.Errorf("upserting section spec %s: %w", spec.ID, err)
		}
		summary.Specs++
	}

	if err := tx.Commit(); err != nil {
		return ImportSummary{}, fmt.Errorf("committing import: %w", err)
	}

	fmt.Fprintf(w, "imported %d entities, %d section specs\n", summary.Entities, summary.Specs)
	return summary, nil
}
