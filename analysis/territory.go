package analysis

import (
	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
)

func coordSet(coords []game.Coord) map[game.Coord]bool {
	set := make(map[game.Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

// DisputedTerritory returns the legal moves worth contesting for player:
// everything outside the opponent's settled empty territory, plus the
// interior points of opponent territory that remain attackable through a
// weak border chain. With excludeFriendlyEyes set, points inside player's
// own two-eyed regions are dropped as well.
//
// A border chain is weak when it has at most four liberties, touches at
// least one of player's chains, and keeps all of its liberties inside the
// candidate eye.
func DisputedTerritory(s *goban.State, player game.Colour, excludeFriendlyEyes bool) []game.Coord {
	valid := goban.AllValidMoves(s, player, true)
	if excludeFriendlyEyes {
		skip := coordSet(FindEyes(s.Board, player).LivingPoints())
		kept := valid[:0]
		for _, v := range valid {
			if !skip[v] {
				kept = append(kept, v)
			}
		}
		valid = kept
	}

	b := s.Board
	chains := b.Chains()
	colourOf := make(map[string]game.Colour, len(chains))
	for _, c := range chains {
		colourOf[c.ID] = c.Colour
	}

	opp := game.Opponent(player)
	territory := make(map[game.Coord]bool)
	attackable := make(map[game.Coord]bool)
	for _, cand := range potentialEyes(b, opp) {
		inside := make(map[game.Coord]bool, len(cand.points))
		for _, p := range cand.points {
			territory[p.Coord()] = true
			inside[p.Coord()] = true
		}
		for _, c := range cand.neighbours {
			if len(c.Liberties) > 4 {
				continue
			}
			var touchesPlayer bool
			for _, id := range b.NeighbouringChainIDs(c.Points) {
				if colourOf[id] == player {
					touchesPlayer = true
					break
				}
			}
			if !touchesPlayer {
				continue
			}
			confined := true
			for _, lib := range c.Liberties {
				if !inside[lib] {
					confined = false
					break
				}
			}
			if !confined {
				continue
			}
			for _, lib := range c.Liberties {
				attackable[lib] = true
			}
		}
	}

	retVal := make([]game.Coord, 0, len(valid))
	for _, v := range valid {
		if !territory[v] || attackable[v] {
			retVal = append(retVal, v)
		}
	}
	return retVal
}

// ContestedPoints returns the points of empty chains, no larger than
// maxChainSize, that border chains of both colours, restricted to the
// available set.
func ContestedPoints(b *goban.Board, available []game.Coord, maxChainSize int) []game.Coord {
	avail := coordSet(available)
	chains := b.Chains()
	colourOf := make(map[string]game.Colour, len(chains))
	for _, c := range chains {
		colourOf[c.ID] = c.Colour
	}

	var retVal []game.Coord
	for _, c := range chains {
		if c.Colour != game.Empty || len(c.Points) > maxChainSize {
			continue
		}
		var hasBlack, hasWhite bool
		for _, id := range b.NeighbouringChainIDs(c.Points) {
			switch colourOf[id] {
			case game.Black:
				hasBlack = true
			case game.White:
				hasWhite = true
			}
		}
		if !hasBlack || !hasWhite {
			continue
		}
		for _, p := range c.Points {
			if avail[p.Coord()] {
				retVal = append(retVal, p.Coord())
			}
		}
	}
	return retVal
}
