// Copyright Venturely Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venturely/intel-engine/internal/catalog"
	"github.com/venturely/intel-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the candidate catalog (import, list)",
	Long: `Catalog manages the SQLite catalog of investors, grant programs, and
section specs. Use import to load a YAML seed file and list to inspect the
stored entities.`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a YAML seed file into the catalog",
	Long: `Import upserts the entities and section specs from a YAML seed file.
Re-importing the same file is idempotent and preserves catalog order.`,
	RunE: runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entities of one kind",
	RunE:  runCatalogList,
}

func init() {
	catalogImportCmd.Flags().String("seed", "", "path to the YAML seed file (required)")

	catalogListCmd.Flags().String("kind", "investor", "entity kind: investor or grant")
	catalogListCmd.Flags().Bool("json", false, "output entities as JSON")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

func openCatalog() (*catalog.Store, error) {
	return catalog.NewStore(engineConfig().Catalog)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	seedPath, _ := cmd.Flags().GetString("seed")
	if seedPath == "" {
		return fmt.Errorf("--seed is required")
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := commandContext()
	defer cancel()

	_, err = store.Import(ctx, seedPath, os.Stdout)
	return err
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	kind := types.EntityKind(kindFlag)
	if kind != types.KindInvestor && kind != types.KindGrant {
		return fmt.Errorf("unknown kind %q: use investor or grant", kindFlag)
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := commandContext()
	defer cancel()

	entities, err := store.Candidates(ctx, kind)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entities)
	}

	if len(entities) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-20s  %s\n", "ID", "Name", "Stages", "Focus")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, e := range entities {
		fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-20s  %s\n",
			e.ID, e.Name,
			fmt.Sprintf("%s-%s", e.StageMin, e.StageMax),
			strings.Join(e.FocusAreas, ", "))
	}
	fmt.Fprintf(os.Stdout, "\n%d entities\n", len(entities))
	return nil
}
