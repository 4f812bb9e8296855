// Package intake translates free-form questionnaire answers into a
// canonical planning request. Normalization never fails: anything it does
// not recognize falls back to a default.
package intake

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/utils"
)

const (
	defaultGoal     = models.GoalHypertrophy
	defaultLocation = "Gym"
	defaultMinutes  = 45
)

// StringList accepts either a single string or a list of strings.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*l = ss
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*l = ss
	return nil
}

// LooseInt accepts a number or a numeric string. Anything else decodes as
// unset so the default applies.
type LooseInt struct {
	Value int
	Valid bool
}

func parseLooseInt(s string) LooseInt {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return LooseInt{Value: n, Valid: true}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= math.MinInt32 && f <= math.MaxInt32 {
		return LooseInt{Value: int(f), Valid: true}
	}
	return LooseInt{}
}

func (n *LooseInt) UnmarshalYAML(node *yaml.Node) error {
	*n = LooseInt{}
	if node.Kind == yaml.ScalarNode {
		*n = parseLooseInt(node.Value)
	}
	return nil
}

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	*n = parseLooseInt(s)
	return nil
}

// UIPayload mirrors the questionnaire answers as submitted by the client.
type UIPayload struct {
	Goal       string     `json:"Specific Goals" yaml:"Specific Goals"`
	Experience string     `json:"Training Experience" yaml:"Training Experience"`
	Location   string     `json:"Training Locations" yaml:"Training Locations"`
	Equipment  StringList `json:"Available Equipments" yaml:"Available Equipments"`
	Focus      StringList `json:"Specific Areas to Focus on" yaml:"Specific Areas to Focus on"`
	Minutes    LooseInt   `json:"total_session_minutes" yaml:"total_session_minutes"`
	Injuries   StringList `json:"injuries" yaml:"injuries"`
}

// DecodePayload reads a payload written as YAML or JSON.
func DecodePayload(r io.Reader) (UIPayload, error) {
	var p UIPayload
	data, err := io.ReadAll(r)
	if err != nil {
		return p, fmt.Errorf("reading payload: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing payload: %w", err)
	}
	return p, nil
}

// Normalize maps a payload onto the canonical request vocabulary.
func Normalize(ui UIPayload) models.Request {
	goal, ok := goalPhrases[strings.TrimSpace(ui.Goal)]
	if !ok {
		goal = defaultGoal
	}
	exp, ok := experiencePhrases[strings.TrimSpace(ui.Experience)]
	if !ok {
		exp = models.Beginner
	}

	location := strings.TrimSpace(ui.Location)
	if location == "" {
		location = defaultLocation
	}
	var tokens []string
	for _, item := range ui.Equipment {
		tokens = append(tokens, equipmentPhrases[strings.TrimSpace(item)]...)
	}
	available := MergeLocationEquipment(tokens, location)

	var focus []string
	var targets []string
	for _, f := range ui.Focus {
		f = strings.TrimSpace(f)
		focus = append(focus, f)
		targets = append(targets, focusMuscles[f]...)
	}

	minutes := defaultMinutes
	if ui.Minutes.Valid {
		minutes = ui.Minutes.Value
	}
	minutes = utils.ClampInt(minutes, models.MinSessionMinutes, models.MaxSessionMinutes)

	var injuries []string
	for _, inj := range ui.Injuries {
		if inj = models.NormalizeInjury(inj); inj != "" {
			injuries = append(injuries, inj)
		}
	}

	requireCardio := contains(available, "cardio_machine") || contains(focus, "Cardio fitness")

	return models.NewRequest(goal, exp, minutes, available, sortedSet(targets), injuries, requireCardio)
}

// MergeLocationEquipment fills in the location's default equipment when
// nothing was picked explicitly and expands the yoga mat into the tokens
// the catalog uses. The result is sorted and de-duplicated.
func MergeLocationEquipment(equipment []string, location string) []string {
	base := make(map[string]bool)
	for _, e := range equipment {
		if e != "" {
			base[e] = true
		}
	}
	if len(base) == 0 {
		for _, e := range locationEquipment[location] {
			base[e] = true
		}
	}
	if base["yoga_mat"] {
		delete(base, "yoga_mat")
		base["bodyweight"] = true
		base["stability ball"] = true
	}
	out := make([]string, 0, len(base))
	for e := range base {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

func sortedSet(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
