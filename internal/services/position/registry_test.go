package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFullLabels(t *testing.T) {
	assert.Equal(t, "QB", Normalize("Quarterback"))
	assert.Equal(t, "RB", Normalize("Running Back"))
	assert.Equal(t, "WR", Normalize("Wide Receiver"))
	assert.Equal(t, "TE", Normalize("Tight End"))
	assert.Equal(t, "CB", Normalize("Cornerback"))
	assert.Equal(t, "LB", Normalize("Linebacker"))
	assert.Equal(t, "K", Normalize("Kicker"))
	assert.Equal(t, "P", Normalize("Punter"))
}

func TestNormalizeSynonyms(t *testing.T) {
	assert.Equal(t, "RB", Normalize("Halfback"))
	assert.Equal(t, "RB", Normalize("Tailback"))
	assert.Equal(t, "MLB", Normalize("Middle Linebacker"))
	assert.Equal(t, "FS", Normalize("Free Safety"))
}

func TestNormalizePassesThroughCanonicalCodes(t *testing.T) {
	for _, code := range []string{"QB", "RB", "WR", "CB", "K", "LS"} {
		assert.Equal(t, code, Normalize(code))
	}
}

func TestNormalizePassesThroughUnknownValues(t *testing.T) {
	assert.Equal(t, "Mystery Position", Normalize("Mystery Position"))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeIsCaseSensitive(t *testing.T) {
	// Only exact labels are aliased; unrecognised casing passes through
	assert.Equal(t, "quarterback", Normalize("quarterback"))
	assert.Equal(t, "QUARTERBACK", Normalize("QUARTERBACK"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, raw := range []string{"Quarterback", "QB", "Mystery Position", ""} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestStatFieldsQuarterback(t *testing.T) {
	fields := StatFields("QB")
	require.NotEmpty(t, fields)

	expected := []string{
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
	}
	assert.Equal(t, expected, fields)
}

func TestStatFieldsUnknownPosition(t *testing.T) {
	assert.Empty(t, StatFields("Mystery Position"))
	assert.Empty(t, StatFields(""))
}

func TestSummaryFieldsArePrefixOfStatFields(t *testing.T) {
	for _, code := range []string{"QB", "RB", "WR", "CB", "K"} {
		full := StatFields(code)
		summary := SummaryFields(code)
		require.LessOrEqual(t, len(summary), 4, code)
		assert.Equal(t, full[:len(summary)], summary, code)
	}
}

func TestSummaryFieldsShortPositionList(t *testing.T) {
	// Positions with fewer than four fields summarise everything
	for _, code := range []string{"C", "OG", "OT"} {
		full := StatFields(code)
		if len(full) < 4 {
			assert.Equal(t, full, SummaryFields(code))
		}
	}
}

func TestSummaryFieldsUnknownPosition(t *testing.T) {
	assert.Empty(t, SummaryFields("Mystery Position"))
}
