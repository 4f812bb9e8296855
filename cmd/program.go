package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/treino/internal/export"
	"github.com/misterclayt0n/treino/internal/planner"
)

var (
	programFlags  requestFlags
	programWeeks  int
	programDays   int
	programDetail bool
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Build a periodized multi-week program",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := programFlags.request()
		if err != nil {
			return err
		}

		weeks, days := cfg.Planner.Weeks, cfg.Planner.DaysPerWeek
		if cmd.Flags().Changed("weeks") {
			weeks = programWeeks
		}
		if cmd.Flags().Changed("days") {
			days = programDays
		}
		if err := planner.ValidateSchedule(weeks, days); err != nil {
			return err
		}

		p, err := loadPlanner(cmd.Context())
		if err != nil {
			return err
		}

		prog, err := p.BuildProgram(cmd.Context(), req, weeks, days)
		if err != nil {
			return fmt.Errorf("Failed to build program: %w", err)
		}

		if programFlags.asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(prog); err != nil {
				return err
			}
		} else {
			printRequest(req)
			green := color.New(color.FgGreen, color.Bold).SprintFunc()
			cyan := color.New(color.FgCyan).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()

			fmt.Printf("%s %d weeks × %d days\n\n", green("Program:"), prog.Weeks, prog.DaysPerWeek)
			for _, s := range prog.Sessions {
				fmt.Printf("%s  %s  %s  %d exercises, %.1f min\n",
					cyan(s.SessionID),
					yellow(fmt.Sprintf("phase %d", s.Phase)),
					s.RPETarget,
					s.Plan.Summary.Exercises,
					s.Plan.Summary.TotalMinutes,
				)
				if programDetail {
					printSession(&s.Plan)
				}
			}
		}

		if programFlags.xlsxPath != "" {
			if err := export.WriteProgramXLSX(programFlags.xlsxPath, prog); err != nil {
				return fmt.Errorf("Failed to export program: %w", err)
			}
			fmt.Fprintf(os.Stderr, "✅ Program written to %s\n", programFlags.xlsxPath)
		}
		if programFlags.tomlPath != "" {
			if err := writeTOMLFile(programFlags.tomlPath, prog); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "✅ Program written to %s\n", programFlags.tomlPath)
		}
		return nil
	},
}

func init() {
	programFlags.register(programCmd)
	programCmd.Flags().IntVarP(&programWeeks, "weeks", "w", 8, "Number of weeks (1-52)")
	programCmd.Flags().IntVarP(&programDays, "days", "d", 3, "Training days per week (1-7)")
	programCmd.Flags().BoolVar(&programDetail, "detail", false, "Print every session in full")
	rootCmd.AddCommand(programCmd)
}
