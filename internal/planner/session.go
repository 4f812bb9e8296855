package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/utils"
)

const (
	categoryConditioning = "Conditioning"
	fullBody             = "Full Body"

	candidatesPerMuscle = 3
	fallbackCandidates  = 6

	cardioShare      = 0.25
	cardioMinSeconds = 6 * 60
	cardioMaxSeconds = 10 * 60

	finisherThreshold = 180

	fallbackCardioName = "Cardio Machine (steady state)"
)

var cardioNameKeywords = []string{"treadmill", "row", "rowing", "erg", "bike", "cycling", "spin", "airdyne", "elliptical", "stair", "ski"}

type scoredExercise struct {
	ex    models.Exercise
	score float64
}

// BuildSession packs a single session for the request using the goal's
// base preset.
func (p *Planner) BuildSession(req models.Request) (*models.SessionPlan, error) {
	return p.buildSession(req, Preset(req.Goal))
}

func (p *Planner) buildSession(req models.Request, preset GoalPreset) (*models.SessionPlan, error) {
	mainBudget := req.TotalSessionMinutes*60 - WarmupSeconds - CooldownSeconds
	if mainBudget <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, req.TotalSessionMinutes)
	}

	selected := p.selectExercises(req)

	reps := int(math.Round(float64(preset.RepLow+preset.RepHigh) / 2))
	perSet := float64(reps)*preset.TempoPerRep + float64(preset.RestSeconds)
	timeLeft := float64(mainBudget)

	var plan []models.PlannedExercise
	if req.RequireCardio {
		cardio := utils.ClampInt(int(cardioShare*timeLeft), cardioMinSeconds, cardioMaxSeconds)
		block := math.Min(float64(cardio+TransitionSeconds), timeLeft)
		plan = append(plan, models.PlannedExercise{
			Exercise:         p.chooseCardio(),
			PrimaryMuscle:    fullBody,
			Category:         categoryConditioning,
			Experience:       req.Experience,
			Sets:             1,
			Reps:             models.RepLabel("Time"),
			LoadPrescription: "Steady Z2 (RPE 6–7)",
			EstimatedSeconds: block,
		})
		timeLeft -= block
	}

	load := loadPrescription(req.Goal)
	for _, ex := range selected {
		// Tight budget: stop at the first exercise that does not fit.
		if timeLeft <= perSet+TransitionSeconds {
			break
		}
		block := float64(preset.SetsMin)*perSet + TransitionSeconds
		if block > timeLeft {
			break
		}
		plan = append(plan, models.PlannedExercise{
			Exercise:         ex.Name,
			PrimaryMuscle:    ex.PrimaryMuscle,
			Category:         ex.Category,
			Experience:       ex.Experience,
			Sets:             preset.SetsMin,
			Reps:             models.RepCount(reps),
			RestSeconds:      preset.RestSeconds,
			LoadPrescription: load,
			EstimatedSeconds: block,
			Video:            ex.Video,
		})
		timeLeft -= block
	}

	timeLeft = inflateSets(plan, perSet, preset.SetsMax, timeLeft)

	if timeLeft > finisherThreshold && wantsFinisher(req.Goal) && !req.RequireCardio {
		remaining := math.Floor(timeLeft)
		plan = append(plan, models.PlannedExercise{
			Exercise:         "Finisher: EMOM — Burpees or KB Swings",
			PrimaryMuscle:    fullBody,
			Category:         categoryConditioning,
			Experience:       req.Experience,
			Sets:             int(remaining) / 60,
			Reps:             models.RepLabel("EMOM 10–15 reps"),
			RestNote:         "Balance of minute",
			LoadPrescription: "Bodyweight/Light KB",
			EstimatedSeconds: remaining,
		})
		timeLeft = 0
	}

	if len(plan) == 0 {
		plan = append(plan, models.PlannedExercise{
			Exercise:         "Walk (brisk)",
			PrimaryMuscle:    fullBody,
			Category:         categoryConditioning,
			Experience:       req.Experience,
			Sets:             1,
			Reps:             models.RepLabel("Time"),
			LoadPrescription: "RPE 6",
			EstimatedSeconds: float64(mainBudget),
		})
	}

	session := &models.SessionPlan{Exercises: plan, Summary: summarize(plan)}
	p.log.Debug("session built",
		"goal", req.Goal,
		"minutes", req.TotalSessionMinutes,
		"exercises", len(plan),
		"total_s", session.Summary.TotalSeconds,
	)
	return session, nil
}

// selectExercises scores the catalog and picks the best candidate for each
// muscle to cover, in muscle order.
func (p *Planner) selectExercises(req models.Request) []models.Exercise {
	var ranked []scoredExercise
	for _, ex := range p.catalog {
		if s := Score(ex, req); s > 0 {
			ranked = append(ranked, scoredExercise{ex: ex, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	top := make(map[string][]scoredExercise)
	for _, c := range ranked {
		m := c.ex.PrimaryMuscle
		if len(top[m]) < candidatesPerMuscle {
			top[m] = append(top[m], c)
		}
	}

	muscles := req.TargetMuscles
	if len(muscles) == 0 {
		muscles = goalMuscleBuckets[req.Goal]
	}

	var selected []models.Exercise
	for _, m := range muscles {
		if c := top[m]; len(c) > 0 {
			selected = append(selected, c[0].ex)
		}
	}
	if len(selected) == 0 {
		for i := 0; i < len(ranked) && i < fallbackCandidates; i++ {
			selected = append(selected, ranked[i].ex)
		}
	}
	return selected
}

// inflateSets adds one set at a time to each non-conditioning exercise in
// list order, cycling until the time runs out or no exercise can grow.
func inflateSets(plan []models.PlannedExercise, perSet float64, setsMax int, timeLeft float64) float64 {
	for timeLeft > perSet {
		grew := false
		for i := range plan {
			if timeLeft <= perSet {
				break
			}
			if plan[i].Category == categoryConditioning || plan[i].Sets >= setsMax {
				continue
			}
			plan[i].Sets++
			plan[i].EstimatedSeconds += perSet
			timeLeft -= perSet
			grew = true
		}
		if !grew {
			break
		}
	}
	return timeLeft
}

// chooseCardio picks the catalog's first cardio or conditioning exercise,
// then the first exercise named like a cardio machine.
func (p *Planner) chooseCardio() string {
	for _, ex := range p.catalog {
		if utils.ContainsFold(ex.Category, "cardio") || utils.ContainsFold(ex.Category, "conditioning") {
			return ex.Name
		}
	}
	for _, ex := range p.catalog {
		for _, kw := range cardioNameKeywords {
			if utils.ContainsFold(ex.Name, kw) {
				return ex.Name
			}
		}
	}
	return fallbackCardioName
}

func loadPrescription(goal models.Goal) string {
	switch goal {
	case models.GoalHypertrophy, models.GoalFatLoss, models.GoalEndurance, models.GoalCoreStability:
		return "RPE 7–8 (2–3 RIR)"
	default:
		return "Start ~80–87% 1RM (RPE 8–9)"
	}
}

func wantsFinisher(goal models.Goal) bool {
	return goal == models.GoalFatLoss || goal == models.GoalEndurance || goal == models.GoalHypertrophy
}

func summarize(plan []models.PlannedExercise) models.SessionSummary {
	total := float64(WarmupSeconds + CooldownSeconds)
	for _, pe := range plan {
		total += pe.EstimatedSeconds
	}
	return models.SessionSummary{
		TotalSeconds:    total,
		TotalMinutes:    models.RoundTenth(total / 60),
		WarmupMinutes:   models.RoundTenth(WarmupSeconds / 60.0),
		CooldownMinutes: models.RoundTenth(CooldownSeconds / 60.0),
		Exercises:       len(plan),
	}
}
