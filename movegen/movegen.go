// Package movegen holds the candidate-move generators the persona selector
// draws from. Every generator answers against the disputed-territory filter
// (its availableSpaces argument), reads but never mutates the board, and
// returns nil when it has nothing to offer.
package movegen

import (
	"github.com/kansuji/tengen/analysis"
	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
)

// Move is a candidate point plus the liberty bookkeeping generators use to
// communicate strength. For aggressive moves the counts describe the enemy
// chain under attack; for growth moves they describe the mover's own chains.
type Move struct {
	Point           game.Coord
	OldLibertyCount int
	NewLibertyCount int
	CreatesLife     bool
}

func coordSet(coords []game.Coord) map[game.Coord]bool {
	set := make(map[game.Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

func randomIndex(r game.Rand, n int) int { return int(r.Rand() * float64(n)) }

// effectiveLiberties computes the liberties a stone of player placed at c
// would have: the empty neighbours of c plus the current liberties of every
// adjacent friendly chain, deduplicated and excluding c itself.
func effectiveLiberties(b *goban.Board, c game.Coord, player game.Colour) []game.Coord {
	seen := map[game.Coord]bool{c: true}
	var libs []game.Coord
	add := func(l game.Coord) {
		if !seen[l] {
			seen[l] = true
			libs = append(libs, l)
		}
	}
	for _, n := range b.Neighbours(c.X, c.Y) {
		if n == nil {
			continue
		}
		switch n.Colour {
		case game.Empty:
			add(n.Coord())
		case player:
			for _, l := range n.Liberties {
				add(l)
			}
		}
	}
	return libs
}

// emptyFieldPoints are the available points all four of whose orthogonal
// neighbours exist and are empty.
func emptyFieldPoints(b *goban.Board, available []game.Coord) []game.Coord {
	var retVal []game.Coord
	for _, c := range available {
		open := true
		for _, n := range b.Neighbours(c.X, c.Y) {
			if n == nil || n.Colour != game.Empty {
				open = false
				break
			}
		}
		if open {
			retVal = append(retVal, c)
		}
	}
	return retVal
}

// Expansion plays into open space: a uniformly random point with all-empty
// surroundings, falling back to single-point contested territory when the
// board has no open field left.
func Expansion(b *goban.Board, player game.Colour, available []game.Coord, r game.Rand) *Move {
	cands := emptyFieldPoints(b, available)
	if len(cands) == 0 {
		cands = analysis.ContestedPoints(b, available, 1)
	}
	if len(cands) == 0 {
		return nil
	}
	return &Move{Point: cands[randomIndex(r, len(cands))]}
}

// Jump restricts Expansion's candidates to points a two-space jump away from
// a friendly stone.
func Jump(b *goban.Board, player game.Colour, available []game.Coord, r game.Rand) *Move {
	var cands []game.Coord
	for _, c := range emptyFieldPoints(b, available) {
		for _, d := range [4]game.Coord{{X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}} {
			if p := b.At(c.X+d.X, c.Y+d.Y); p != nil && p.Colour == player {
				cands = append(cands, c)
				break
			}
		}
	}
	if len(cands) == 0 {
		return nil
	}
	return &Move{Point: cands[randomIndex(r, len(cands))]}
}

// growthCandidates lists, for every liberty of player's chains inside the
// available set, the liberty count the placement would reach and the weakest
// current count among the friendly chains it touches (99 when it touches
// none).
func growthCandidates(b *goban.Board, player game.Colour, available []game.Coord) []Move {
	avail := coordSet(available)
	seen := make(map[game.Coord]bool)
	var cands []Move
	for _, c := range b.Chains() {
		if c.Colour != player {
			continue
		}
		for _, lib := range c.Liberties {
			if !avail[lib] || seen[lib] {
				continue
			}
			seen[lib] = true

			oldLibs := 99
			for _, n := range b.Neighbours(lib.X, lib.Y) {
				if n != nil && n.Colour == player && len(n.Liberties) < oldLibs {
					oldLibs = len(n.Liberties)
				}
			}
			cands = append(cands, Move{
				Point:           lib,
				OldLibertyCount: oldLibs,
				NewLibertyCount: len(effectiveLiberties(b, lib, player)),
			})
		}
	}
	return cands
}

// bestGain picks uniformly among the candidates maximizing the liberty gain.
func bestGain(cands []Move, r game.Rand) *Move {
	if len(cands) == 0 {
		return nil
	}
	best := cands[0].NewLibertyCount - cands[0].OldLibertyCount
	for _, m := range cands[1:] {
		if gain := m.NewLibertyCount - m.OldLibertyCount; gain > best {
			best = gain
		}
	}
	top := cands[:0]
	for _, m := range cands {
		if m.NewLibertyCount-m.OldLibertyCount == best {
			top = append(top, m)
		}
	}
	pick := top[randomIndex(r, len(top))]
	return &pick
}

// Growth extends a friendly chain without losing breathing room: the
// placement must keep more than one liberty and at least as many as the
// chain currently has.
func Growth(b *goban.Board, player game.Colour, available []game.Coord, r game.Rand) *Move {
	var kept []Move
	for _, m := range growthCandidates(b, player, available) {
		if m.NewLibertyCount > 1 && m.NewLibertyCount >= m.OldLibertyCount {
			kept = append(kept, m)
		}
	}
	return bestGain(kept, r)
}

// Defend rescues a chain in atari: a growth candidate whose chain is down
// to its last liberty and which strictly gains liberties.
func Defend(b *goban.Board, player game.Colour, available []game.Coord, r game.Rand) *Move {
	var kept []Move
	for _, m := range growthCandidates(b, player, available) {
		if m.OldLibertyCount <= 1 && m.NewLibertyCount > m.OldLibertyCount {
			kept = append(kept, m)
		}
	}
	return bestGain(kept, r)
}

// libertyGroupCount counts the distinct empty regions a chain's liberties
// fall into.
func libertyGroupCount(b *goban.Board, c *goban.Chain) int {
	seen := make(map[string]bool)
	for _, lib := range c.Liberties {
		seen[b.At(lib.X, lib.Y).Chain] = true
	}
	return len(seen)
}

// Surround tightens the noose around enemy chains. Candidate placements on
// enemy liberties are classified as captures (the enemy's last liberty),
// ataris (taking it to one), or plain surrounds, and the strongest class
// wins. Placements that would leave the new stone short of breath against a
// healthy enemy are discarded; the smart flag gates the riskier ataris.
func Surround(b *goban.Board, player game.Colour, available []game.Coord, smart bool) *Move {
	avail := coordSet(available)
	chains := b.Chains()
	byID := make(map[string]*goban.Chain, len(chains))
	for _, c := range chains {
		byID[c.ID] = c
	}

	opp := game.Opponent(player)
	seen := make(map[game.Coord]bool)
	var captures, ataris, surrounds []Move
	for _, c := range chains {
		if c.Colour != opp {
			continue
		}
		for _, lib := range c.Liberties {
			if !avail[lib] || seen[lib] {
				continue
			}
			seen[lib] = true

			var weakest *goban.Chain
			for _, n := range b.Neighbours(lib.X, lib.Y) {
				if n == nil || n.Colour != opp {
					continue
				}
				ch := byID[n.Chain]
				if weakest == nil || len(ch.Liberties) < len(weakest.Liberties) {
					weakest = ch
				}
			}
			enemyLibs := len(weakest.Liberties)
			effLibs := len(effectiveLiberties(b, lib, player))
			m := Move{Point: lib, OldLibertyCount: enemyLibs, NewLibertyCount: enemyLibs - 1}
			switch {
			case enemyLibs <= 1:
				captures = append(captures, m)
			case enemyLibs == 2:
				if effLibs >= 2 || (libertyGroupCount(b, weakest) == 1 && len(weakest.Points) > 3) || !smart {
					ataris = append(ataris, m)
				}
			default:
				if effLibs > 2 {
					surrounds = append(surrounds, m)
				}
			}
		}
	}
	for _, class := range [][]Move{captures, ataris, surrounds} {
		if len(class) > 0 {
			return &class[0]
		}
	}
	return nil
}

// Capture is the Surround result when it removes the enemy chain outright.
func Capture(b *goban.Board, player game.Colour, available []game.Coord, smart bool) *Move {
	if m := Surround(b, player, available, smart); m != nil && m.NewLibertyCount == 0 {
		return m
	}
	return nil
}

// DefendCapture is the Defend result when it saves a chain from capture on
// the very next move.
func DefendCapture(b *goban.Board, player game.Colour, available []game.Coord, r game.Rand) *Move {
	if m := Defend(b, player, available, r); m != nil && m.OldLibertyCount == 1 && m.NewLibertyCount > 1 {
		return m
	}
	return nil
}

// eyeCreationMoves lists the placements that give one of player's
// not-yet-living chains a new eye, life-creating moves first. Chains of a
// single stone, living chains, and chains with more than maxLiberties
// liberties are left alone.
func eyeCreationMoves(b *goban.Board, player game.Colour, available []game.Coord, maxLiberties int) []Move {
	curEyes := analysis.FindEyes(b, player)
	curLiving := curEyes.LivingGroups()
	curCount := curEyes.Count()

	avail := coordSet(available)
	opp := game.Opponent(player)
	seen := make(map[game.Coord]bool)
	var life, plain []Move
	for _, c := range b.Chains() {
		if c.Colour != player || len(c.Points) <= 1 {
			continue
		}
		if len(curEyes[c.ID]) >= 2 || len(c.Liberties) > maxLiberties {
			continue
		}
		for _, lib := range c.Liberties {
			if !avail[lib] || seen[lib] {
				continue
			}
			seen[lib] = true

			var open, empty int
			for _, n := range b.Neighbours(lib.X, lib.Y) {
				if n == nil {
					continue
				}
				if n.Colour != opp {
					open++
				}
				if n.Colour == game.Empty {
					empty++
				}
			}
			if open < 2 || empty < 1 {
				continue
			}

			ev := b.EvaluateMoveResult(lib.X, lib.Y, player)
			newEyes := analysis.FindEyes(ev, player)
			switch {
			case newEyes.LivingGroups() > curLiving:
				life = append(life, Move{Point: lib, CreatesLife: true})
			case newEyes.Count() > curCount && newEyes.LivingGroups() >= curLiving:
				plain = append(plain, Move{Point: lib})
			}
		}
	}
	return append(life, plain...)
}

// EyeMove builds an eye for one of player's endangered chains.
func EyeMove(b *goban.Board, player game.Colour, available []game.Coord) *Move {
	if ms := eyeCreationMoves(b, player, available, 99); len(ms) > 0 {
		return &ms[0]
	}
	return nil
}

// EyeBlock denies the opponent an eye, but only when the block is
// unambiguous: exactly one move that would have made the opponent alive, or
// failing that, exactly one move that would have gained them an eye.
func EyeBlock(b *goban.Board, player game.Colour, available []game.Coord) *Move {
	var life, plain []Move
	for _, m := range eyeCreationMoves(b, game.Opponent(player), available, 5) {
		if m.CreatesLife {
			life = append(life, m)
		} else {
			plain = append(plain, m)
		}
	}
	if len(life) == 1 {
		return &life[0]
	}
	if len(life) == 0 && len(plain) == 1 {
		return &plain[0]
	}
	return nil
}

// Corner claims an untouched 3×3 corner, checking the four corners in a
// fixed order. A corner qualifies when at least seven of its cells are on
// the board and none holds a stone.
func Corner(b *goban.Board) *Move {
	m := int16(b.Size() - 3)
	edge := int16(b.Size() - 1)
	if m < 1 {
		return nil
	}
	windows := []struct {
		x0, y0, x1, y1 int16
		pt             game.Coord
	}{
		{m, m, edge, edge, game.Coord{X: m, Y: m}},
		{0, m, 2, edge, game.Coord{X: 2, Y: m}},
		{0, 0, 2, 2, game.Coord{X: 2, Y: 2}},
		{m, 0, edge, 2, game.Coord{X: m, Y: 2}},
	}
	for _, w := range windows {
		var live, stones int
		for x := w.x0; x <= w.x1; x++ {
			for y := w.y0; y <= w.y1; y++ {
				switch b.At(x, y).Colour {
				case game.Offline:
				case game.Empty:
					live++
				default:
					live++
					stones++
				}
			}
		}
		if live >= 7 && stones == 0 && b.At(w.pt.X, w.pt.Y).Colour == game.Empty {
			return &Move{Point: w.pt}
		}
	}
	return nil
}

// Random plays anywhere in the available set, but only while some territory
// is still genuinely contested; once nothing is, extending is no better
// than passing.
func Random(b *goban.Board, player game.Colour, available []game.Coord, r game.Rand) *Move {
	if len(available) == 0 || len(analysis.ContestedPoints(b, available, 99)) == 0 {
		return nil
	}
	return &Move{Point: available[randomIndex(r, len(available))]}
}
