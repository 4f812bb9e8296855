package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCatalogCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the exercise catalog to a TOML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "catalog_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ExportCatalogToFile(cmd.Context(), outputFile); err != nil {
			return fmt.Errorf("error exporting catalog: %w", err)
		}

		fmt.Printf("✅ Catalog exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Build the catalog database from a TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ImportCatalogFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Printf("✅ Database built successfully from TOML dump (%d exercises).\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCatalogCmd)
	rootCmd.AddCommand(buildDBCmd)
}
