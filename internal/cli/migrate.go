package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsearch/internal/adapter/store"
)

var migrateRebuild bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade the bolt document file to the current schema",
	Long: `Check the schema version of the bolt document file and run pending
migrations. With --rebuild, a file written by a newer version is cleared
and re-stamped with the current schema.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateRebuild, "rebuild", false, "clear a file created by a newer version")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg.Storage.Backend != "bolt" && cfg.Storage.Backend != "" {
		fmt.Printf("Nothing to migrate for the %s backend\n", cfg.Storage.Backend)
		return nil
	}

	if err := cfg.EnsureDataDir(GetRootDir()); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	st, err := store.NewBoltStore(cfg.StorePath(GetRootDir()))
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer st.Close()

	result, err := st.CheckMigration()
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}

	switch {
	case result.NeedsRebuild:
		if !migrateRebuild {
			return fmt.Errorf("%s; rerun with --rebuild to clear it", result.Reason)
		}
		fmt.Printf("Rebuild required: %s\n", result.Reason)
		fmt.Println("Clearing stored documents...")
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear store: %w", err)
		}
		if err := st.SetSchemaInfo(&store.SchemaInfo{Version: store.CurrentSchemaVersion}); err != nil {
			return fmt.Errorf("failed to update schema info: %w", err)
		}
	case result.NeedsMigration:
		fmt.Printf("Running schema migration: %s\n", result.Reason)
		if err := st.Migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	default:
		fmt.Printf("Schema is up to date (v%d)\n", result.OldVersion)
		return nil
	}

	fmt.Printf("Schema is now v%d\n", store.CurrentSchemaVersion)
	return nil
}
