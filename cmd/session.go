package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/treino/internal/export"
)

var sessionFlags requestFlags

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Build a single workout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := sessionFlags.request()
		if err != nil {
			return err
		}
		p, err := loadPlanner(cmd.Context())
		if err != nil {
			return err
		}

		plan, err := p.BuildSession(req)
		if err != nil {
			return fmt.Errorf("Failed to build session: %w", err)
		}

		if sessionFlags.asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(plan); err != nil {
				return err
			}
		} else {
			printRequest(req)
			printSession(plan)
		}

		if sessionFlags.xlsxPath != "" {
			if err := export.WriteSessionXLSX(sessionFlags.xlsxPath, plan); err != nil {
				return fmt.Errorf("Failed to export session: %w", err)
			}
			fmt.Fprintf(os.Stderr, "✅ Session written to %s\n", sessionFlags.xlsxPath)
		}
		if sessionFlags.tomlPath != "" {
			if err := writeTOMLFile(sessionFlags.tomlPath, plan); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "✅ Session written to %s\n", sessionFlags.tomlPath)
		}
		return nil
	},
}

func writeTOMLFile(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := export.WriteTOML(f, v); err != nil {
		f.Close()
		return fmt.Errorf("Failed to export: %w", err)
	}
	return f.Close()
}

func init() {
	sessionFlags.register(sessionCmd)
	rootCmd.AddCommand(sessionCmd)
}
