// Package position is the static registry of canonical position codes.
// It maps the raw position strings the backend emits (full names,
// abbreviations, synonyms) onto fixed canonical codes, and holds the
// per-position stat field lists used for display.
package position

// positionAliases maps raw backend position strings to canonical codes.
// Lookups are case-sensitive; the keys are spelled exactly as the
// backend emits them. Synonyms that should map to different codes must
// each have an explicit entry, there is no derivation.
var positionAliases = map[string]string{
	// Offense
	"Quarterback":       "QB",
	"Running Back":      "RB",
	"Halfback":          "RB",
	"Tailback":          "RB",
	"Fullback":          "FB",
	"Wide Receiver":     "WR",
	"Receiver":          "WR",
	"Tight End":         "TE",
	"Center":            "C",
	"Guard":             "OG",
	"Offensive Guard":   "OG",
	"Tackle":            "OT",
	"Offensive Tackle":  "OT",
	"Offensive Lineman": "OL",

	// Defense
	"Defensive Tackle":   "DT",
	"Nose Tackle":        "DT",
	"Defensive End":      "DE",
	"Defensive Lineman":  "DL",
	"Linebacker":         "LB",
	"Middle Linebacker":  "MLB",
	"Outside Linebacker": "OLB",
	"Cornerback":         "CB",
	"Corner":             "CB",
	"Safety":             "S",
	"Free Safety":        "FS",
	"Strong Safety":      "SS",
	"Defensive Back":     "DB",

	// Special teams
	"Kicker":        "K",
	"Placekicker":   "K",
	"Punter":        "P",
	"Long Snapper":  "LS",
	"Kick Returner": "KR",
	"Punt Returner": "PR",
}

// statFields lists the stat fields shown for each canonical code, in
// display order. The first summaryCount entries form the compact view.
var statFields = map[string][]string{
	"QB": {
		"completions",
		"passingAttempts",
		"completionPercentage",
		"yardsPerPassAttempt",
		"touchdowns",
		"interceptions",
		"longestPass",
		"sacked",
		"rushingYards",
		"penalties",
	},
	"RB": {
		"rushingAttempts",
		"rushingYards",
		"yardsPerCarry",
		"touchdowns",
		"longestRun",
		"receptions",
		"receivingYards",
		"fumbles",
		"penalties",
	},
	"FB": {
		"rushingAttempts",
		"rushingYards",
		"touchdowns",
		"receptions",
		"fumbles",
		"penalties",
	},
	"WR": {
		"receptions",
		"receivingTargets",
		"receivingYards",
		"yardsPerReception",
		"touchdowns",
		"longestReception",
		"fumbles",
		"penalties",
	},
	"TE": {
		"receptions",
		"receivingTargets",
		"receivingYards",
		"touchdowns",
		"longestReception",
		"fumbles",
		"penalties",
	},
	"C":  {"gamesPlayed", "sacksAllowed", "penalties"},
	"OG": {"gamesPlayed", "sacksAllowed", "penalties"},
	"OT": {"gamesPlayed", "sacksAllowed", "penalties"},
	"OL": {"gamesPlayed", "sacksAllowed", "penalties"},
	"DT": {
		"tackles",
		"assistedTackles",
		"sacks",
		"tacklesForLoss",
		"forcedFumbles",
		"fumbleRecoveries",
		"penalties",
	},
	"DE": {
		"tackles",
		"assistedTackles",
		"sacks",
		"tacklesForLoss",
		"forcedFumbles",
		"fumbleRecoveries",
		"penalties",
	},
	"DL": {
		"tackles",
		"assistedTackles",
		"sacks",
		"tacklesForLoss",
		"forcedFumbles",
		"penalties",
	},
	"LB": {
		"tackles",
		"assistedTackles",
		"sacks",
		"interceptions",
		"forcedFumbles",
		"passDeflections",
		"penalties",
	},
	"MLB": {
		"tackles",
		"assistedTackles",
		"sacks",
		"interceptions",
		"forcedFumbles",
		"passDeflections",
		"penalties",
	},
	"OLB": {
		"tackles",
		"assistedTackles",
		"sacks",
		"interceptions",
		"forcedFumbles",
		"passDeflections",
		"penalties",
	},
	"CB": {
		"tackles",
		"interceptions",
		"passDeflections",
		"touchdowns",
		"forcedFumbles",
		"penalties",
	},
	"DB": {
		"tackles",
		"interceptions",
		"passDeflections",
		"touchdowns",
		"forcedFumbles",
		"penalties",
	},
	"S": {
		"tackles",
		"assistedTackles",
		"interceptions",
		"passDeflections",
		"forcedFumbles",
		"penalties",
	},
	"FS": {
		"tackles",
		"assistedTackles",
		"interceptions",
		"passDeflections",
		"forcedFumbles",
		"penalties",
	},
	"SS": {
		"tackles",
		"assistedTackles",
		"interceptions",
		"passDeflections",
		"forcedFumbles",
		"penalties",
	},
	"K": {
		"fieldGoalsMade",
		"fieldGoalsAttempted",
		"fieldGoalPercentage",
		"longestFieldGoal",
		"extraPointsMade",
		"extraPointsAttempted",
	},
	"P": {
		"punts",
		"puntingYards",
		"yardsPerPunt",
		"longestPunt",
		"puntsInside20",
	},
	"KR": {
		"returns",
		"returnYards",
		"yardsPerReturn",
		"touchdowns",
		"longestReturn",
		"fumbles",
	},
	"PR": {
		"returns",
		"returnYards",
		"yardsPerReturn",
		"touchdowns",
		"longestReturn",
		"fumbles",
	},
}

// summaryCount is the number of leading stat fields shown in compact views
const summaryCount = 4

// Normalize maps a raw position string to its canonical code.
// Unmapped input passes through unchanged so distinct unknown strings
// are never merged.
func Normalize(raw string) string {
	if code, ok := positionAliases[raw]; ok {
		return code
	}
	return raw
}

// StatFields returns the display-ordered stat field list for a
// canonical code. Unknown codes yield an empty list.
func StatFields(canonical string) []string {
	return statFields[canonical]
}

// SummaryFields returns the compact-view prefix of StatFields
func SummaryFields(canonical string) []string {
	fields := statFields[canonical]
	if len(fields) > summaryCount {
		return fields[:summaryCount]
	}
	return fields
}
