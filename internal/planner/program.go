package planner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/misterclayt0n/treino/internal/models"
)

const (
	DefaultWeeks       = 8
	DefaultDaysPerWeek = 3

	MaxWeeks       = 52
	MaxDaysPerWeek = 7
)

// SessionID formats the identifier of a program session, e.g. W3D02.
func SessionID(week, day int) string {
	return fmt.Sprintf("W%dD%02d", week, day)
}

// SplitTargets returns the muscles each training day should cover. Explicit
// targets are used on every day; otherwise the goal's bucket is cut into
// contiguous chunks, reusing the tail of the bucket for days left empty.
func SplitTargets(goal models.Goal, targets []string, days int) [][]string {
	chunks := make([][]string, 0, days)
	if len(targets) > 0 {
		for i := 0; i < days; i++ {
			chunks = append(chunks, append([]string(nil), targets...))
		}
		return chunks
	}

	all := goalMuscleBuckets[goal]
	n := max(1, len(all)/max(1, days))
	for i := 0; i < days; i++ {
		lo := min(i*n, len(all))
		hi := min((i+1)*n, len(all))
		chunk := all[lo:hi]
		if len(chunk) == 0 {
			chunk = all[max(0, len(all)-n):]
		}
		chunks = append(chunks, append([]string(nil), chunk...))
	}
	return chunks
}

// ValidateSchedule checks that a program has 1–52 weeks of 1–7 days.
func ValidateSchedule(weeks, daysPerWeek int) error {
	if weeks < 1 || weeks > MaxWeeks || daysPerWeek < 1 || daysPerWeek > MaxDaysPerWeek {
		return fmt.Errorf("%w: got %d weeks, %d days", ErrInvalidSchedule, weeks, daysPerWeek)
	}
	return nil
}

// BuildProgram builds weeks*daysPerWeek sessions, applying each week's
// periodization overrides. Sessions are built in parallel and returned
// ordered by week, then day.
func (p *Planner) BuildProgram(ctx context.Context, req models.Request, weeks, daysPerWeek int) (*models.ProgramSchedule, error) {
	if err := ValidateSchedule(weeks, daysPerWeek); err != nil {
		return nil, err
	}

	dayTargets := SplitTargets(req.Goal, req.TargetMuscles, daysPerWeek)
	sessions := make([]models.ScheduledSession, weeks*daysPerWeek)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for w := 1; w <= weeks; w++ {
		override := WeekOverrides(req.Goal, w)
		preset := override.Apply(Preset(req.Goal))
		for d := 1; d <= daysPerWeek; d++ {
			w, d := w, d
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				dayReq := req
				dayReq.TargetMuscles = dayTargets[(d-1)%len(dayTargets)]

				plan, err := p.buildSession(dayReq, preset)
				if err != nil {
					return fmt.Errorf("building %s: %w", SessionID(w, d), err)
				}
				sessions[(w-1)*daysPerWeek+(d-1)] = models.ScheduledSession{
					Week:      w,
					Day:       d,
					SessionID: SessionID(w, d),
					Targets:   dayReq.TargetMuscles,
					RPETarget: override.RPEText,
					Phase:     override.Phase,
					Plan:      *plan,
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.log.Info("program built",
		"goal", req.Goal,
		"weeks", weeks,
		"days_per_week", daysPerWeek,
		"sessions", len(sessions),
	)
	return &models.ProgramSchedule{
		Goal:        req.Goal,
		Weeks:       weeks,
		DaysPerWeek: daysPerWeek,
		Sessions:    sessions,
	}, nil
}
