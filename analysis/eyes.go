// Package analysis sits between the board engine and the move generators.
// It enumerates potential eyes, confirms true eyes (including regions that a
// single chain fully encircles), and extracts the disputed territory a
// player should actually fight over.
package analysis

import (
	"github.com/chewxy/math32"

	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
)

// maxEyeSize caps how large an empty region may be and still count as an
// eye candidate: at most 40% of the live board, and never more than 11.
func maxEyeSize(b *goban.Board) int {
	var live float32
	for x := int16(0); x < int16(b.Size()); x++ {
		for y := int16(0); y < int16(b.Size()); y++ {
			if b.At(x, y).Colour != game.Offline {
				live++
			}
		}
	}
	return int(math32.Min(0.4*live, 11))
}

// candidate is an empty region together with the stone chains bordering it.
type candidate struct {
	points     []*goban.Point
	neighbours []*goban.Chain
}

// potentialEyes lists the empty chains all of whose bordering chains belong
// to player, capped by maxEyeSize. Candidates appear in the board's
// column-major chain order.
func potentialEyes(b *goban.Board, player game.Colour) []candidate {
	chains := b.Chains()
	byID := make(map[string]*goban.Chain, len(chains))
	for _, c := range chains {
		byID[c.ID] = c
	}

	max := maxEyeSize(b)
	var retVal []candidate
	for _, c := range chains {
		if c.Colour != game.Empty || len(c.Points) > max {
			continue
		}
		ids := b.NeighbouringChainIDs(c.Points)
		if len(ids) == 0 {
			continue
		}
		all := true
		nbs := make([]*goban.Chain, 0, len(ids))
		for _, id := range ids {
			nb := byID[id]
			if nb.Colour != player {
				all = false
				break
			}
			nbs = append(nbs, nb)
		}
		if !all {
			continue
		}
		retVal = append(retVal, candidate{points: c.Points, neighbours: nbs})
	}
	return retVal
}

// Eyes maps a chain id to the eye point-groups that chain controls.
// A chain controlling two or more eyes is alive.
type Eyes map[string][][]*goban.Point

// LivingGroups counts the chains controlling at least two eyes.
func (e Eyes) LivingGroups() int {
	var n int
	for _, groups := range e {
		if len(groups) >= 2 {
			n++
		}
	}
	return n
}

// Count returns the total number of eyes.
func (e Eyes) Count() int {
	var n int
	for _, groups := range e {
		n += len(groups)
	}
	return n
}

// LivingPoints returns the coordinates inside the eyes of every living
// chain.
func (e Eyes) LivingPoints() []game.Coord {
	var retVal []game.Coord
	for _, groups := range e {
		if len(groups) < 2 {
			continue
		}
		for _, g := range groups {
			for _, p := range g {
				retVal = append(retVal, p.Coord())
			}
		}
	}
	return retVal
}

// FindEyes confirms the true eyes player controls on the board. Chains must
// be current.
//
// A candidate bordered by a single chain is that chain's eye outright. A
// candidate bordered by several chains is an eye only if one of them fully
// encircles it on its own.
func FindEyes(b *goban.Board, player game.Colour) Eyes {
	retVal := make(Eyes)
	for _, cand := range potentialEyes(b, player) {
		switch len(cand.neighbours) {
		case 1:
			owner := cand.neighbours[0].ID
			retVal[owner] = append(retVal[owner], cand.points)
		default:
			if c := encirclingChain(b, cand); c != nil {
				retVal[c.ID] = append(retVal[c.ID], cand.points)
			}
		}
	}
	return retVal
}

// encirclingChain finds the single bordering chain, if any, that still
// surrounds the candidate after every other bordering chain is lifted off
// the board.
func encirclingChain(b *goban.Board, cand candidate) *goban.Chain {
	candBox := boundsOf(cand.points)
	edge := int16(b.Size() - 1)
	for _, c := range cand.neighbours {
		if !encloses(boundsOf(c.Points), candBox, edge) {
			continue
		}
		eval := b.Clone()
		for _, other := range cand.neighbours {
			if other.ID == c.ID {
				continue
			}
			for _, p := range other.Points {
				q := eval.At(p.X, p.Y)
				q.Colour = game.Empty
			}
		}
		eval.UpdateChains(true)

		region := eval.ChainAt(cand.points[0].X, cand.points[0].Y)
		if len(eval.NeighbouringChainIDs(region.Points)) == 1 {
			return c
		}
	}
	return nil
}

type box struct {
	minX, minY, maxX, maxY int16
}

func boundsOf(points []*goban.Point) box {
	b := box{minX: points[0].X, minY: points[0].Y, maxX: points[0].X, maxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < b.minX {
			b.minX = p.X
		}
		if p.Y < b.minY {
			b.minY = p.Y
		}
		if p.X > b.maxX {
			b.maxX = p.X
		}
		if p.Y > b.maxY {
			b.maxY = p.Y
		}
	}
	return b
}

// encloses reports whether outer strictly surrounds inner on every side,
// with equality allowed where inner already touches the board edge.
func encloses(outer, inner box, edge int16) bool {
	west := outer.minX < inner.minX || (inner.minX == 0 && outer.minX == 0)
	south := outer.minY < inner.minY || (inner.minY == 0 && outer.minY == 0)
	east := outer.maxX > inner.maxX || (inner.maxX == edge && outer.maxX == edge)
	north := outer.maxY > inner.maxY || (inner.maxY == edge && outer.maxY == edge)
	return west && south && east && north
}
