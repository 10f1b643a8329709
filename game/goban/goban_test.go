package goban

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kansuji/tengen/game"
)

var chainTests = []struct {
	name   string
	board  []string
	x, y   int16
	chain  string // expected chain id at (x, y)
	libs   []game.Coord
	length int
}{
	// lone stone
	// ⎢ . . . ⎥
	// ⎢ . X . ⎥
	// ⎢ . . . ⎥
	{
		name:  "lone stone",
		board: []string{"...", ".X.", "..."},
		x:     1, y: 1,
		chain:  "1,1",
		libs:   []game.Coord{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		length: 1,
	},

	// bent three; liberties collected once per chain
	// ⎢ . X . ⎥
	// ⎢ . X X ⎥
	// ⎢ . . . ⎥
	{
		name:  "bent three",
		board: []string{"...", ".XX", ".X."},
		x:     2, y: 1,
		chain:  "1,1",
		libs:   []game.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 2, Y: 0}},
		length: 3,
	},

	// offline point blocks the flood and is no liberty
	// ⎢ . . . ⎥
	// ⎢ X # X ⎥
	// ⎢ . . . ⎥
	{
		name:  "offline split",
		board: []string{".X.", ".#.", ".X."},
		x:     0, y: 1,
		chain:  "0,1",
		libs:   []game.Coord{{X: 0, Y: 2}, {X: 0, Y: 0}},
		length: 1,
	},
}

func TestUpdateChains(t *testing.T) {
	for _, ct := range chainTests {
		b := FromSimple(ct.board)
		b.UpdateChains(true)

		p := b.At(ct.x, ct.y)
		if p.Chain != ct.chain {
			t.Errorf("%v: expected chain %q at %d,%d. Got %q instead", ct.name, ct.chain, ct.x, ct.y, p.Chain)
		}
		if diff := cmp.Diff(ct.libs, p.Liberties); diff != "" {
			t.Errorf("%v: liberties mismatch (-want +got):\n%s", ct.name, diff)
		}

		var members int
		for x := int16(0); x < int16(b.Size()); x++ {
			for y := int16(0); y < int16(b.Size()); y++ {
				if b.At(x, y).Chain == ct.chain {
					members++
				}
			}
		}
		if members != ct.length {
			t.Errorf("%v: expected %d members in chain %q. Got %d instead", ct.name, ct.length, ct.chain, members)
		}
	}
}

// Two non-offline points share a chain id iff they are in the same
// orthogonal same-colour component.
func TestChainPartition(t *testing.T) {
	b := FromSimple([]string{".X.O.", "XXOO.", ".X.#.", "OO.XX", "..XX."})
	b.UpdateChains(true)

	for x := int16(0); x < 5; x++ {
		for y := int16(0); y < 5; y++ {
			p := b.At(x, y)
			if p.Colour == game.Offline {
				if p.Chain != "" {
					t.Errorf("offline point %d,%d assigned chain %q", x, y, p.Chain)
				}
				continue
			}
			if p.Chain == "" {
				t.Errorf("point %d,%d left unanalyzed", x, y)
			}
			for _, n := range b.Neighbours(p.X, p.Y) {
				if n == nil {
					continue
				}
				sameColour := n.Colour == p.Colour
				sameChain := n.Chain == p.Chain
				if sameColour != sameChain {
					t.Errorf("points %d,%d and %d,%d: same colour %v but same chain %v", p.X, p.Y, n.X, n.Y, sameColour, sameChain)
				}
			}
		}
	}
}

var captureTests = []struct {
	name   string
	board  []string
	x, y   int16
	player game.Colour
	after  []string
}{
	// basic capture
	// ⎢ . . . . . ⎥
	// ⎢ . . . . . ⎥
	// ⎢ . X O X . ⎥
	// ⎢ . . X . . ⎥      X plays the last liberty at 2,3
	// ⎢ . . . . . ⎥
	{
		name:  "single stone",
		board: []string{".....", "..X..", ".XO..", "..X..", "....."},
		x:     2, y: 3,
		player: game.Black,
		after:  []string{".....", "..X..", ".X.X.", "..X..", "....."},
	},

	// group capture along the edge
	{
		name:  "edge group",
		board: []string{"OOX..", "X....", ".....", ".....", "....."},
		x:     1, y: 1,
		player: game.Black,
		after:  []string{"..X..", "XX...", ".....", ".....", "....."},
	},

	// capture takes precedence over suicide: the placed stone has no
	// liberties either, but the opposing chain is removed first
	{
		name:  "capture beats suicide",
		board: []string{".OX..", "OX...", ".....", ".....", "....."},
		x:     0, y: 0,
		player: game.Black,
		after:  []string{"X.X..", "OX...", ".....", ".....", "....."},
	},
}

func TestEvaluateMoveResult(t *testing.T) {
	for _, ct := range captureTests {
		b := FromSimple(ct.board)
		b.UpdateChains(true)
		before := b.Simple()

		ev := b.EvaluateMoveResult(ct.x, ct.y, ct.player)
		if diff := cmp.Diff(ct.after, ev.Simple()); diff != "" {
			t.Errorf("%v: result mismatch (-want +got):\n%s", ct.name, diff)
		}

		// the input board is never mutated
		if diff := cmp.Diff(before, b.Simple()); diff != "" {
			t.Errorf("%v: input board mutated (-want +got):\n%s", ct.name, diff)
		}
	}
}

func TestCloneEq(t *testing.T) {
	b := FromSimple([]string{".X.O.", "XXOO.", ".X.#.", "OO.XX", "..XX."})
	b.UpdateChains(true)

	if !b.Eq(b) {
		t.Fatal("Failed basic equality")
	}
	c := b.Clone()
	if c == b {
		t.Error("Cloning should not yield the same address")
	}
	if !b.Eq(c) {
		t.Fatal("Cloning failed")
	}

	c.At(0, 0).Colour = game.Black
	c.UpdateChains(true)
	if b.Eq(c) {
		t.Error("clone mutation leaked into the original")
	}
	if b.At(0, 0).Colour != game.Empty {
		t.Error("clone shares point storage with the original")
	}
}

func TestSimpleRoundTrip(t *testing.T) {
	boards := [][]string{
		{"..", ".."},
		{".....", "..X..", ".XO..", "..X..", "....."},
		{".X.O.", "XXOO.", ".X.#.", "OO.XX", "..XX."},
		{"#####", "#...#", "#.X.#", "#...#", "#####"},
	}
	for _, simple := range boards {
		b := FromSimple(simple)
		b.UpdateChains(true)
		if diff := cmp.Diff(simple, b.Simple()); diff != "" {
			t.Errorf("round trip failed (-want +got):\n%s", diff)
		}
	}
}

func TestChains(t *testing.T) {
	b := FromSimple([]string{"X..", "...", "..X"})
	b.UpdateChains(true)

	chains := b.Chains()
	var stones, empties int
	for _, c := range chains {
		switch c.Colour {
		case game.Black:
			stones++
			if len(c.Points) != 1 {
				t.Errorf("expected singleton chain, got %d points", len(c.Points))
			}
		case game.Empty:
			empties++
			if c.Liberties != nil {
				t.Errorf("empty chain %q should not carry liberties", c.ID)
			}
		}
	}
	if stones != 2 {
		t.Errorf("expected 2 black chains. Got %d instead", stones)
	}
	if empties != 1 {
		t.Errorf("expected the empty points to form one chain. Got %d instead", empties)
	}
}

func TestToDot(t *testing.T) {
	b := FromSimple([]string{".....", "..X..", ".XO..", "..X..", "....."})
	b.UpdateChains(true)
	s := b.ToDot()
	if s == "" {
		t.Fatal("expected a dot dump")
	}
	t.Logf("\n%v", s)
}
