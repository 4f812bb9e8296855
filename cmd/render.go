package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/misterclayt0n/treino/internal/models"
)

func printRequest(req models.Request) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	list := func(items []string) string {
		if len(items) == 0 {
			return "-"
		}
		return strings.Join(items, ", ")
	}

	fmt.Printf("%s %s  %s %s  %s %d min\n",
		cyan("Goal:"), req.Goal,
		cyan("Experience:"), req.Experience,
		cyan("Length:"), req.TotalSessionMinutes,
	)
	fmt.Printf("%s %s\n", yellow("Equipment:"), list(req.AvailableEquipment))
	fmt.Printf("%s %s\n", yellow("Targets:"), list(req.TargetMuscles))
	if len(req.Injuries) > 0 {
		fmt.Printf("%s %s\n", yellow("Injuries:"), list(req.Injuries))
	}
	fmt.Println()
}

// pad left-aligns s in a column of width runes, truncating when needed.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-n)
}

func printSession(plan *models.SessionPlan) {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	// Define table indent and column widths.
	tableIndent := "   "
	widths := []int{34, 5, 16, 18, 28, 6}
	titles := []string{"Exercise", "Sets", "Reps", "Rest", "Load", "Min"}

	border := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w)
		}
		return tableIndent + left + strings.Join(parts, mid) + right
	}
	row := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = pad(c, widths[i])
		}
		return tableIndent + "│" + strings.Join(padded, "│") + "│"
	}

	fmt.Println(border("┌", "┬", "┐"))
	fmt.Println(row(titles))
	fmt.Println(border("├", "┼", "┤"))
	for _, pe := range plan.Exercises {
		fmt.Println(row([]string{
			pe.Exercise,
			fmt.Sprintf("%d", pe.Sets),
			pe.Reps.String(),
			pe.Rest(),
			pe.LoadPrescription,
			fmt.Sprintf("%.1f", pe.EstimatedMinutes()),
		}))
	}
	fmt.Println(border("└", "┴", "┘"))

	s := plan.Summary
	fmt.Printf("%s %s min (%s %.0f min, %s %.0f min)\n\n",
		red("Total:"), green(fmt.Sprintf("%.1f", s.TotalMinutes)),
		"warm-up", s.WarmupMinutes, "cool-down", s.CooldownMinutes,
	)
}
