// Package stats reshapes raw backend stat objects for display: it
// normalises field-name casing, resolves display labels and renders
// values with an explicit placeholder for absent fields.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/teamhubhq/teamhub/internal/services/position"
)

// MissingValue is rendered for stat fields that are absent from a
// player's stat object. Present-but-zero values render as "0".
const MissingValue = "--"

// displayLabels maps known stat field keys to their display labels.
// Fields absent from this table fall back to a derived label.
var displayLabels = map[string]string{
	"completions":          "Completions",
	"passingAttempts":      "Passing Attempts",
	"completionPercentage": "Completion %",
	"yardsPerPassAttempt":  "Yards/Attempt",
	"touchdowns":           "Touchdowns",
	"interceptions":        "Interceptions",
	"longestPass":          "Longest Pass",
	"sacked":               "Sacked",
	"rushingAttempts":      "Rushing Attempts",
	"rushingYards":         "Rushing Yards",
	"yardsPerCarry":        "Yards/Carry",
	"longestRun":           "Longest Run",
	"receptions":           "Receptions",
	"receivingTargets":     "Targets",
	"receivingYards":       "Receiving Yards",
	"yardsPerReception":    "Yards/Reception",
	"longestReception":     "Longest Reception",
	"fumbles":              "Fumbles",
	"tackles":              "Tackles",
	"assistedTackles":      "Assisted Tackles",
	"sacks":                "Sacks",
	"tacklesForLoss":       "Tackles For Loss",
	"forcedFumbles":        "Forced Fumbles",
	"fumbleRecoveries":     "Fumble Recoveries",
	"passDeflections":      "Pass Deflections",
	"fieldGoalsMade":       "FG Made",
	"fieldGoalsAttempted":  "FG Attempted",
	"fieldGoalPercentage":  "FG %",
	"longestFieldGoal":     "Longest FG",
	"extraPointsMade":      "XP Made",
	"extraPointsAttempted": "XP Attempted",
	"punts":                "Punts",
	"puntingYards":         "Punting Yards",
	"yardsPerPunt":         "Yards/Punt",
	"longestPunt":          "Longest Punt",
	"puntsInside20":        "Punts Inside 20",
	"returns":              "Returns",
	"returnYards":          "Return Yards",
	"yardsPerReturn":       "Yards/Return",
	"longestReturn":        "Longest Return",
	"penalties":            "Penalties",
	"gamesPlayed":          "Games Played",
	"sacksAllowed":         "Sacks Allowed",
}

// NormalizeKeys re-keys a raw stat object by lower-casing only the
// first character of each key, so "PassingYards" and "passingYards"
// both land on "passingYards". Colliding keys resolve last-write-wins;
// iteration is over sorted raw keys so the outcome is deterministic.
// This is a migration shim for inconsistent backend casing, not a safe
// transform for multi-word acronym fields.
func NormalizeKeys(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out[normalizeKey(k)] = raw[k]
	}
	return out
}

func normalizeKey(key string) string {
	if key == "" {
		return key
	}
	r := []rune(key)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// FormatLabel resolves the display label for a stat field key. Keys
// absent from the label table derive one by inserting a space before
// each internal capital and upper-casing the result.
func FormatLabel(fieldKey string) string {
	if label, ok := displayLabels[fieldKey]; ok {
		return label
	}

	var b strings.Builder
	for i, r := range fieldKey {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// FormatValue renders a stat value for display. The placeholder is
// used only when the field is absent, never for present zero values.
func FormatValue(v any, present bool) string {
	if !present {
		return MissingValue
	}
	switch val := v.(type) {
	case nil:
		return MissingValue
	case float64:
		// JSON numbers decode as float64; render integers without
		// a trailing fraction
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%.1f", val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// SummaryFields returns the compact-view stat fields for a canonical
// position code
func SummaryFields(canonical string) []string {
	return position.SummaryFields(canonical)
}

// Line is one labeled, formatted stat ready for rendering
type Line struct {
	Key   string
	Label string
	Value string
}

// Lines builds the display lines for a canonical position code from a
// raw stat object, in the registry's field order. Fields the player is
// missing render the placeholder.
func Lines(canonical string, raw map[string]any) []Line {
	normalized := NormalizeKeys(raw)
	fields := position.StatFields(canonical)
	lines := make([]Line, 0, len(fields))
	for _, field := range fields {
		v, ok := normalized[field]
		lines = append(lines, Line{
			Key:   field,
			Label: FormatLabel(field),
			Value: FormatValue(v, ok),
		})
	}
	return lines
}

// SummaryLines is Lines restricted to the compact-view fields
func SummaryLines(canonical string, raw map[string]any) []Line {
	normalized := NormalizeKeys(raw)
	fields := position.SummaryFields(canonical)
	lines := make([]Line, 0, len(fields))
	for _, field := range fields {
		v, ok := normalized[field]
		lines = append(lines, Line{
			Key:   field,
			Label: FormatLabel(field),
			Value: FormatValue(v, ok),
		})
	}
	return lines
}
