// Package goban implements the board model and chain engine: connected-group
// discovery, liberty computation, capture resolution, and the textual board
// codec the host speaks.
//
// The board owns all Point storage in a single flat backing slice. Chain and
// liberty relationships are recorded as chain-id strings and coordinate
// pairs, never as pointers between points, so a deep copy is an element-wise
// copy with no reference fix-up.
package goban

import (
	"fmt"

	"github.com/kansuji/tengen/game"
)

// Point is one cell of the board.
type Point struct {
	X, Y      int16
	Colour    game.Colour
	Chain     string       // empty string means "unanalyzed"
	Liberties []game.Coord // nil means "unknown"
}

func (p *Point) Coord() game.Coord { return game.Coord{X: p.X, Y: p.Y} }

// Board is a square grid of Points indexed by [x][y], column-major.
// Visually, (0, 0) is the bottom left.
type Board struct {
	size int32
	data []Point   // backing data
	it   [][]Point // column iterator for quick access
}

func makeBoard(size int) (data []Point, it [][]Point) {
	data = make([]Point, size*size)
	it = make([][]Point, size)
	for i := range it {
		start := i * size
		it[i] = data[start : start+size : start+size]
	}
	return data, it
}

// New creates an empty size×size board.
func New(size int) *Board {
	data, it := makeBoard(size)
	b := &Board{
		size: int32(size),
		data: data,
		it:   it,
	}
	for x := range b.it {
		for y := range b.it[x] {
			b.it[x][y].X = int16(x)
			b.it[x][y].Y = int16(y)
		}
	}
	return b
}

// Size returns the length of one side of the board.
func (b *Board) Size() int { return int(b.size) }

// At returns the point at (x, y), or nil if the coordinate is off the board.
// Offline points are returned; callers check Colour.
func (b *Board) At(x, y int16) *Point {
	if int32(x) < 0 || int32(x) >= b.size || int32(y) < 0 || int32(y) >= b.size {
		return nil
	}
	return &b.it[x][y]
}

var adjacents = [4]game.Coord{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// Neighbours returns the four orthogonal points of (x, y). Entries are nil
// for coordinates off the board and for Offline points, which behave like
// the board edge everywhere in the engine.
func (b *Board) Neighbours(x, y int16) [4]*Point {
	var retVal [4]*Point
	for i, a := range adjacents {
		p := b.At(x+a.X, y+a.Y)
		if p == nil || p.Colour == game.Offline {
			continue
		}
		retVal[i] = p
	}
	return retVal
}

// Clone deep-copies the board.
func (b *Board) Clone() *Board {
	data, it := makeBoard(int(b.size))
	copy(data, b.data)
	for i := range data {
		if libs := data[i].Liberties; libs != nil {
			data[i].Liberties = make([]game.Coord, len(libs))
			copy(data[i].Liberties, libs)
		}
	}
	return &Board{
		size: b.size,
		data: data,
		it:   it,
	}
}

// Eq checks that both boards hold the same position, chain ids included.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	if b.size != other.size {
		return false
	}
	for i := range b.data {
		p, q := &b.data[i], &other.data[i]
		if p.Colour != q.Colour || p.Chain != q.Chain || len(p.Liberties) != len(q.Liberties) {
			return false
		}
		for j := range p.Liberties {
			if !p.Liberties[j].Eq(q.Liberties[j]) {
				return false
			}
		}
	}
	return true
}

// Format implements fmt.Formatter. The board prints with row 0 at the
// bottom, matching the visual orientation of the coordinates.
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's':
		for y := b.size - 1; y >= 0; y-- {
			fmt.Fprint(s, "⎢ ")
			for x := int32(0); x < b.size; x++ {
				fmt.Fprintf(s, "%s ", b.it[x][y].Colour)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// UpdateChains assigns a chain id and a liberty list to every non-offline
// point. Traversal is column-major, and chain ids are the "x,y" of the first
// member encountered, so the result is a deterministic function of the board.
//
// Empty points are chained by the same flood fill; their liberty lists stay
// nil.
func (b *Board) UpdateChains(reset bool) {
	if reset {
		for i := range b.data {
			b.data[i].Chain = ""
			b.data[i].Liberties = nil
		}
	}
	for x := range b.it {
		for y := range b.it[x] {
			p := &b.it[x][y]
			if p.Colour == game.Offline || p.Chain != "" {
				continue
			}
			members := b.floodFill(p)
			id := p.Coord().String()

			var libs []game.Coord
			if p.Colour != game.Empty {
				libs = b.libertiesOf(members)
			}
			for _, m := range members {
				m.Chain = id
				if p.Colour != game.Empty {
					m.Liberties = make([]game.Coord, len(libs))
					copy(m.Liberties, libs)
				}
			}
		}
	}
}

// floodFill collects the orthogonally connected same-colour component of p,
// in breadth-first order starting from p. Offline points block the fill.
func (b *Board) floodFill(p *Point) []*Point {
	seen := map[game.Coord]bool{p.Coord(): true}
	members := []*Point{p}
	for i := 0; i < len(members); i++ {
		m := members[i]
		for _, n := range b.Neighbours(m.X, m.Y) {
			if n == nil || n.Colour != p.Colour || seen[n.Coord()] {
				continue
			}
			seen[n.Coord()] = true
			members = append(members, n)
		}
	}
	return members
}

// libertiesOf returns the deduplicated empty orthogonal neighbours of a set
// of points, in discovery order.
func (b *Board) libertiesOf(members []*Point) []game.Coord {
	seen := make(map[game.Coord]bool)
	var libs []game.Coord
	for _, m := range members {
		for _, n := range b.Neighbours(m.X, m.Y) {
			if n == nil || n.Colour != game.Empty || seen[n.Coord()] {
				continue
			}
			seen[n.Coord()] = true
			libs = append(libs, n.Coord())
		}
	}
	return libs
}

// Chain is a read-only view over one chain of the board.
type Chain struct {
	ID        string
	Colour    game.Colour
	Points    []*Point
	Liberties []game.Coord
}

// Chains lists every chain on the board in column-major first-appearance
// order. UpdateChains must have run first.
func (b *Board) Chains() []*Chain {
	byID := make(map[string]*Chain)
	var retVal []*Chain
	for x := range b.it {
		for y := range b.it[x] {
			p := &b.it[x][y]
			if p.Colour == game.Offline {
				continue
			}
			c, ok := byID[p.Chain]
			if !ok {
				c = &Chain{ID: p.Chain, Colour: p.Colour, Liberties: p.Liberties}
				byID[p.Chain] = c
				retVal = append(retVal, c)
			}
			c.Points = append(c.Points, p)
		}
	}
	return retVal
}

// ChainAt returns the chain containing (x, y), or nil for offline or
// off-board coordinates.
func (b *Board) ChainAt(x, y int16) *Chain {
	p := b.At(x, y)
	if p == nil || p.Colour == game.Offline {
		return nil
	}
	for _, c := range b.Chains() {
		if c.ID == p.Chain {
			return c
		}
	}
	return nil
}

// NeighbouringChainIDs returns the ids of chains orthogonally adjacent to
// any of the given points, excluding the points' own chains, in discovery
// order.
func (b *Board) NeighbouringChainIDs(points []*Point) []string {
	own := make(map[string]bool)
	for _, p := range points {
		own[p.Chain] = true
	}
	seen := make(map[string]bool)
	var retVal []string
	for _, p := range points {
		for _, n := range b.Neighbours(p.X, p.Y) {
			if n == nil || own[n.Chain] || seen[n.Chain] {
				continue
			}
			seen[n.Chain] = true
			retVal = append(retVal, n.Chain)
		}
	}
	return retVal
}

// findAllCapturedChains returns the chains to be removed after a placement
// by moved. Opposing chains with no liberties are captured first; only when
// no opposing chain is captured may a friendly zero-liberty chain be removed.
// Returns nil when nothing is captured.
func (b *Board) findAllCapturedChains(moved game.Colour) []*Chain {
	var enemy, friendly []*Chain
	for _, c := range b.Chains() {
		if c.Colour == game.Empty || len(c.Liberties) > 0 {
			continue
		}
		if c.Colour == moved {
			friendly = append(friendly, c)
		} else {
			enemy = append(enemy, c)
		}
	}
	if len(enemy) > 0 {
		return enemy
	}
	return friendly
}

// UpdateCaptures refreshes the chains and removes every captured chain,
// with opposing chains taking priority over friendly suicide. Legality of
// the placement itself is the adjudicator's business, not ours.
func (b *Board) UpdateCaptures(moved game.Colour) {
	b.UpdateChains(true)
	captured := b.findAllCapturedChains(moved)
	if len(captured) == 0 {
		return
	}
	for _, c := range captured {
		for _, p := range c.Points {
			p.Colour = game.Empty
			p.Chain = ""
			p.Liberties = nil
		}
	}
	b.UpdateChains(true)
}

// EvaluateMoveResult produces a new board reflecting the placement of
// player's stone at (x, y) and any resulting captures. The input board is
// not mutated.
func (b *Board) EvaluateMoveResult(x, y int16, player game.Colour) *Board {
	next := b.Clone()
	p := next.At(x, y)
	p.Colour = player
	next.UpdateCaptures(player)
	return next
}
