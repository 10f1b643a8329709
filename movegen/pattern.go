package movegen

import (
	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
)

// A pattern is a 3×3 stencil matched against a point's neighbourhood.
//
//	'X' the player     'x' not the opponent
//	'O' the opponent   'o' not the player
//	'.' empty          ' ' off the board (or offline)
//	'?' anything
//
// Row i of the stencil covers x offsets -1..1 and column j covers y offsets
// -1..1; the centre cell is the move itself.
type pattern [3]string

// The 13 base shapes: hane, cut, net and edge-block ideas cribbed from the
// classic 3×3 urgency tables. The full catalog is the closure of these
// under the dihedral group.
var basePatterns = []pattern{
	{"XOX", "...", "???"},
	{"XO.", "...", "?.?"},
	{"XO?", "X..", "o.?"},
	{".O.", "X..", "..."},
	{"XO?", "O.x", "?x?"},
	{"XO?", "O.X", "???"},
	{"?X?", "O.O", "xxx"},
	{"OX?", "x.O", "???"},
	{"X.?", "O.?", "   "},
	{"OX?", "X.O", "   "},
	{"?X?", "o.O", "   "},
	{"?XO", "o.o", "   "},
	{"?OX", "X.O", "   "},
}

var expandedPatterns []pattern

func init() { expandedPatterns = expandPatterns(basePatterns) }

func rotate90(p pattern) pattern {
	var out pattern
	for i := 0; i < 3; i++ {
		row := make([]byte, 3)
		for j := 0; j < 3; j++ {
			row[j] = p[2-j][i]
		}
		out[i] = string(row)
	}
	return out
}

func verticalMirror(p pattern) pattern { return pattern{p[2], p[1], p[0]} }

func horizontalMirror(p pattern) pattern {
	reverse := func(s string) string {
		b := []byte(s)
		b[0], b[2] = b[2], b[0]
		return string(b)
	}
	return pattern{reverse(p[0]), reverse(p[1]), reverse(p[2])}
}

// expandPatterns closes the base catalog under rotation and mirroring,
// deduplicated in generation order.
func expandPatterns(base []pattern) []pattern {
	var all []pattern
	for _, p := range base {
		all = append(all, p, rotate90(p), rotate90(rotate90(p)), rotate90(rotate90(rotate90(p))))
	}
	for _, p := range all[:len(all):len(all)] {
		all = append(all, verticalMirror(p))
	}
	for _, p := range all[:len(all):len(all)] {
		all = append(all, horizontalMirror(p))
	}

	seen := make(map[pattern]bool, len(all))
	deduped := all[:0]
	for _, p := range all {
		if !seen[p] {
			seen[p] = true
			deduped = append(deduped, p)
		}
	}
	return deduped
}

// cellAt treats offline points like the board edge: both are "off".
func cellAt(b *goban.Board, x, y int16) *goban.Point {
	p := b.At(x, y)
	if p == nil || p.Colour == game.Offline {
		return nil
	}
	return p
}

func matches(b *goban.Board, x, y int16, player, opp game.Colour, pat pattern) bool {
	for i := int16(0); i < 3; i++ {
		for j := int16(0); j < 3; j++ {
			p := cellAt(b, x+i-1, y+j-1)
			switch pat[i][j] {
			case 'X':
				if p == nil || p.Colour != player {
					return false
				}
			case 'O':
				if p == nil || p.Colour != opp {
					return false
				}
			case 'x':
				if p != nil && p.Colour == opp {
					return false
				}
			case 'o':
				if p != nil && p.Colour == player {
					return false
				}
			case '.':
				if p == nil || p.Colour != game.Empty {
					return false
				}
			case ' ':
				if p != nil {
					return false
				}
			}
		}
	}
	return true
}

// MatchesAnyPattern reports whether some catalog pattern accepts a play by
// player at (x, y). Symmetric positions agree by construction of the
// expansion.
func MatchesAnyPattern(b *goban.Board, x, y int16, player game.Colour) bool {
	opp := game.Opponent(player)
	for _, pat := range expandedPatterns {
		if matches(b, x, y, player, opp, pat) {
			return true
		}
	}
	return false
}

// Pattern scans the available points for catalog matches and plays a
// uniformly random one. With smart set, matches that would leave the stone
// with a single effective liberty are ignored. The pacer runs once per
// board column.
func Pattern(b *goban.Board, player game.Colour, available []game.Coord, r game.Rand, smart bool, pacer game.Pacer) *Move {
	avail := coordSet(available)
	var cands []game.Coord
	for x := int16(0); x < int16(b.Size()); x++ {
		pacer.Yield()
		for y := int16(0); y < int16(b.Size()); y++ {
			c := game.Coord{X: x, Y: y}
			if !avail[c] || !MatchesAnyPattern(b, x, y, player) {
				continue
			}
			if smart && len(effectiveLiberties(b, c, player)) <= 1 {
				continue
			}
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return nil
	}
	return &Move{Point: cands[randomIndex(r, len(cands))]}
}
