package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/planner"
)

var showExExperience string

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-name]",
	Short: "Display an exercise and how it scores for every goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		var ex *models.Exercise
		for i := range exercises {
			if strings.EqualFold(exercises[i].Name, args[0]) {
				ex = &exercises[i]
				break
			}
		}
		if ex == nil {
			return fmt.Errorf("Exercise '%s' not found", args[0])
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		fmt.Println(boldGreen("Exercise Information:"))
		fmt.Printf("  %s: %s\n", boldCyan("Name"), ex.Name)
		fmt.Printf("  %s: %s\n", boldCyan("Primary Muscle"), ex.PrimaryMuscle)
		fmt.Printf("  %s: %s\n", boldCyan("Category"), ex.Category)
		fmt.Printf("  %s: %s\n", boldCyan("Experience"), ex.Experience)
		if ex.NeedsNoEquipment() {
			fmt.Printf("  %s: none\n", boldCyan("Equipment"))
		} else {
			fmt.Printf("  %s: %s\n", boldCyan("Equipment"), ex.EquipmentString())
		}
		if ex.Video != "" {
			fmt.Printf("  %s: %s\n", boldCyan("Video"), ex.Video)
		}

		var flagged []string
		for _, tag := range planner.InjuryTags() {
			if planner.InjuryExcluded(ex.Name, []string{tag}) {
				flagged = append(flagged, tag)
			}
		}
		if len(flagged) > 0 {
			fmt.Printf("  %s: %s\n", red("Avoid with"), strings.Join(flagged, ", "))
		}

		exp := models.ParseExperience(showExExperience)
		fmt.Printf("\n%s %s:\n", boldGreen("Scores for a"), strings.ToLower(string(exp))+" lifter")
		for _, goal := range models.Goals {
			req := models.NewRequest(goal, exp, 60, nil, nil, nil, false)
			fmt.Printf("  %-16s %s\n", goal, yellow(fmt.Sprintf("%.2f", planner.Score(*ex, req))))
		}
		return nil
	},
}

func init() {
	showExCmd.Flags().StringVarP(&showExExperience, "experience", "e", "Intermediate", "Experience level to score for")
	rootCmd.AddCommand(showExCmd)
}
