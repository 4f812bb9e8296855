package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/treino/internal/catalog"
	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/utils"
)

var (
	exerciseName       string
	exerciseMuscle     string
	exerciseCategory   string
	exerciseExperience string
	exerciseEquipment  string
	exerciseVideo      string
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Add an exercise to the catalog, or update it if the name exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		exercise := models.Exercise{
			Name:          exerciseName,
			PrimaryMuscle: utils.TitleCase(exerciseMuscle),
			Category:      utils.TitleCase(exerciseCategory),
			Experience:    catalog.NormalizeExperience(exerciseExperience),
			Equipment:     utils.SplitTokens(exerciseEquipment),
			Video:         exerciseVideo,
		}

		exists, err := st.ExerciseExists(cmd.Context(), exercise.Name)
		if err != nil {
			return err
		}
		if err := st.ImportExercises(cmd.Context(), []models.Exercise{exercise}); err != nil {
			return fmt.Errorf("Failed to create exercise: %w", err)
		}

		if exists {
			fmt.Printf("✅ Updated exercise: %s\n", exercise.Name)
		} else {
			fmt.Printf("✅ Created exercise: %s\n", exercise.Name)
		}
		return nil
	},
}

var importExercisesCmd = &cobra.Command{
	Use:   "import-exercises [file]",
	Short: "Import exercises from a CSV, XLSX or TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ImportCatalogFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to import exercises: %w", err)
		}

		fmt.Printf("✅ Imported %d exercises\n", n)
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "list-exercises",
	Short: "List the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		for _, ex := range exercises {
			equipment := ex.EquipmentString()
			if equipment == "" {
				equipment = "none"
			}
			fmt.Printf("%s %s (%s) %s\n",
				cyan("• "+ex.Name),
				yellow(ex.PrimaryMuscle),
				ex.Category,
				magenta("["+string(ex.Experience)+"; "+equipment+"]"),
			)
		}
		return nil
	},
}

var deleteExerciseCmd = &cobra.Command{
	Use:   "delete-exercise [exercise-name]",
	Short: "Remove an exercise from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteExerciseByName(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✅ Deleted exercise: %s\n", args[0])
		return nil
	},
}

func init() {
	addExerciseCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "Exercise name")
	addExerciseCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "Primary muscle group")
	addExerciseCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "Category, e.g. Strength or Cardio")
	addExerciseCmd.Flags().StringVarP(&exerciseExperience, "experience", "e", "Beginner", "Beginner, Intermediate or Advanced")
	addExerciseCmd.Flags().StringVar(&exerciseEquipment, "equipment", "", "Comma separated equipment, empty for none")
	addExerciseCmd.Flags().StringVar(&exerciseVideo, "video", "", "Demo video URL")

	addExerciseCmd.MarkFlagRequired("name")
	addExerciseCmd.MarkFlagRequired("muscle")

	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(importExercisesCmd)
	rootCmd.AddCommand(listExercisesCmd)
	rootCmd.AddCommand(deleteExerciseCmd)
}
