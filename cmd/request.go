package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/treino/internal/intake"
	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/utils"
)

// requestFlags are shared by every command that plans a session.
type requestFlags struct {
	goal       string
	experience string
	minutes    int
	equipment  string
	targets    string
	injuries   string
	cardio     bool
	uiPayload  string

	xlsxPath string
	tomlPath string
	asJSON   bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.goal, "goal", "g", "", "fat_loss, hypertrophy, strength, endurance, power or core_stability")
	cmd.Flags().StringVarP(&f.experience, "experience", "e", "Beginner", "Beginner, Intermediate or Advanced")
	cmd.Flags().IntVarP(&f.minutes, "minutes", "m", 45, "Total session length in minutes (20-120)")
	cmd.Flags().StringVar(&f.equipment, "equipment", "", "Comma separated equipment, empty for no restriction")
	cmd.Flags().StringVar(&f.targets, "targets", "", "Comma separated target muscles")
	cmd.Flags().StringVar(&f.injuries, "injuries", "", "Comma separated injuries, e.g. knee,lower back")
	cmd.Flags().BoolVar(&f.cardio, "cardio", false, "Add a cardio block")
	cmd.Flags().StringVar(&f.uiPayload, "ui", "", "Questionnaire payload file (YAML or JSON) to use instead of the flags above")

	cmd.Flags().StringVar(&f.xlsxPath, "xlsx", "", "Also write the result to this .xlsx file")
	cmd.Flags().StringVar(&f.tomlPath, "toml", "", "Also write the result to this .toml file")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print JSON instead of a table")
}

// request builds the canonical request from either the questionnaire
// payload or the flags.
func (f *requestFlags) request() (models.Request, error) {
	if f.uiPayload != "" {
		file, err := os.Open(f.uiPayload)
		if err != nil {
			return models.Request{}, fmt.Errorf("failed to read payload: %w", err)
		}
		defer file.Close()

		payload, err := intake.DecodePayload(file)
		if err != nil {
			return models.Request{}, err
		}
		return intake.Normalize(payload), nil
	}

	if f.goal == "" {
		return models.Request{}, fmt.Errorf("either --goal or --ui is required")
	}
	goal, err := models.ParseGoal(f.goal)
	if err != nil {
		return models.Request{}, err
	}

	return models.NewRequest(goal, models.ParseExperience(f.experience), f.minutes,
		utils.SplitTokens(f.equipment), utils.SplitTokens(f.targets), utils.SplitTokens(f.injuries), f.cardio), nil
}
