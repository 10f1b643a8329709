package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kansuji/tengen/game"
)

func TestExpandPatterns(t *testing.T) {
	assert := assert.New(t)
	assert.True(len(expandedPatterns) >= len(basePatterns))
	assert.True(len(expandedPatterns) <= 104, "got %d patterns", len(expandedPatterns))

	// closure: rotating or mirroring any expanded pattern yields another
	// expanded pattern
	seen := make(map[pattern]bool, len(expandedPatterns))
	for _, p := range expandedPatterns {
		seen[p] = true
	}
	for _, p := range expandedPatterns {
		assert.True(seen[rotate90(p)], "rotation of %v missing", p)
		assert.True(seen[verticalMirror(p)], "vertical mirror of %v missing", p)
		assert.True(seen[horizontalMirror(p)], "horizontal mirror of %v missing", p)
	}
}

func TestMatchesAnyPattern(t *testing.T) {
	assert := assert.New(t)

	// hane: the XOX/... base shape sits in column 1, so 2,1 matches
	b := board([]string{".....", "XOX..", ".....", ".....", "....."})
	assert.True(MatchesAnyPattern(b, 2, 1, game.Black))

	// an empty board matches nothing
	empty := board([]string{".....", ".....", ".....", ".....", "....."})
	assert.False(MatchesAnyPattern(empty, 2, 2, game.Black))
}

// rotating the board and the target coordinates preserves the verdict
func TestPatternSymmetry(t *testing.T) {
	assert := assert.New(t)

	simple := []string{".....", "XOX..", ".O...", "..X..", "....."}
	b := board(simple)
	r := board(rotateSimple(simple))
	n := int16(len(simple))

	for _, player := range []game.Colour{game.Black, game.White} {
		for x := int16(0); x < n; x++ {
			for y := int16(0); y < n; y++ {
				if b.At(x, y).Colour != game.Empty {
					continue
				}
				want := MatchesAnyPattern(b, x, y, player)
				got := MatchesAnyPattern(r, n-1-y, x, player)
				assert.Equal(want, got, "verdict changed under rotation at %d,%d for %v", x, y, player)
			}
		}
	}
}

// rotateSimple turns the textual board 90°: old (x, y) lands on (n-1-y, x).
func rotateSimple(s []string) []string {
	n := len(s)
	out := make([]string, n)
	for x := 0; x < n; x++ {
		col := make([]byte, n)
		for y := 0; y < n; y++ {
			col[y] = s[y][n-1-x]
		}
		out[x] = string(col)
	}
	return out
}

func TestPatternGenerator(t *testing.T) {
	assert := assert.New(t)

	b := board([]string{".....", "XOX..", ".....", ".....", "....."})
	m := Pattern(b, game.Black, allEmpty(b), fixedRand{0}, false, game.NopPacer{})
	assert.NotNil(m)

	// smart mode drops matches that would end up short of breath
	cramped := board([]string{"XOX", "O.O", "..."})
	sm := Pattern(cramped, game.Black, allEmpty(cramped), fixedRand{0}, true, game.NopPacer{})
	if sm != nil {
		assert.True(len(effectiveLiberties(cramped, sm.Point, game.Black)) > 1)
	}
}
