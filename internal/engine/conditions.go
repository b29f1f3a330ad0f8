package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Unlock conditions are tiny expressions of the form "stat op number",
// e.g. "credit < 550" or "money >= 100000". Anything the parser does not
// recognize evaluates to true so a typo in the data tables never bricks an
// action.

var conditionRe = regexp.MustCompile(`^(\w+)\s*([<>=!]+)\s*(\d+)$`)

// EvalCondition evaluates a single unlock expression against the state.
// Unparseable input is treated as satisfied.
func EvalCondition(s *PlayerState, expr string) bool {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return true
	}
	m := conditionRe.FindStringSubmatch(expr)
	if m == nil {
		return true
	}
	stat, op := m[1], m[2]
	target, err := strconv.Atoi(m[3])
	if err != nil {
		return true
	}

	value, ok := statValue(s, stat)
	if !ok {
		return true
	}

	switch op {
	case "<":
		return value < target
	case "<=":
		return value <= target
	case ">":
		return value > target
	case ">=":
		return value >= target
	case "=", "==":
		return value == target
	case "!=":
		return value != target
	default:
		return true
	}
}

func statValue(s *PlayerState, name string) (int, bool) {
	switch name {
	case "money":
		return s.Money, true
	case "health":
		return s.Attributes.Health, true
	case "san":
		return s.Attributes.San, true
	case "credit":
		return s.Attributes.Credit, true
	case "luck":
		return s.Attributes.Luck, true
	case "skills":
		return s.Education.Skills, true
	case "influence":
		return s.Education.Influence, true
	case "education":
		return s.Education.Level, true
	case "round":
		return s.CurrentRound, true
	default:
		return 0, false
	}
}
