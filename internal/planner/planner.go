// Package planner turns an exercise catalog and a request into session
// plans and periodized programs.
package planner

import (
	"errors"

	"github.com/misterclayt0n/treino/internal/logger"
	"github.com/misterclayt0n/treino/internal/models"
)

var (
	ErrInvalidDuration = errors.New("session duration too short for warm-up and cool-down")
	ErrInvalidSchedule = errors.New("program must have 1-52 weeks of 1-7 days")
)

// Planner builds sessions against a fixed catalog. The catalog is never
// written to, so one Planner can serve concurrent builds.
type Planner struct {
	catalog []models.Exercise
	log     *logger.Logger
}

func New(exercises []models.Exercise, log *logger.Logger) *Planner {
	if log == nil {
		log = logger.Nop()
	}
	return &Planner{
		catalog: append([]models.Exercise(nil), exercises...),
		log:     log,
	}
}

// Catalog returns a copy of the exercises the planner selects from.
func (p *Planner) Catalog() []models.Exercise {
	return append([]models.Exercise(nil), p.catalog...)
}
