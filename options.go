package tengen

import (
	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
	"github.com/kansuji/tengen/movegen"
)

// moveOption is one memo slot: unevaluated until its first probe, then a
// cached result (which may be "no move").
type moveOption struct {
	fn   func() *movegen.Move
	move *movegen.Move
	done bool
}

// moveOptions is the per-decision table of lazily evaluated generators.
// Personas probe the same slots repeatedly; each generator runs at most once
// per decision, and every probe is a suspension point for the host.
type moveOptions struct {
	pacer game.Pacer

	capture, defendCapture, eyeMove, eyeBlock, pattern,
	growth, expansion, jump, defend, surround, random, corner moveOption
}

func newMoveOptions(s *goban.State, player game.Colour, available []game.Coord, r game.Rand, pacer game.Pacer, smart bool) *moveOptions {
	b := s.Board
	o := &moveOptions{pacer: pacer}
	o.growth.fn = func() *movegen.Move { return movegen.Growth(b, player, available, r) }
	o.expansion.fn = func() *movegen.Move { return movegen.Expansion(b, player, available, r) }
	o.jump.fn = func() *movegen.Move { return movegen.Jump(b, player, available, r) }
	o.defend.fn = func() *movegen.Move { return movegen.Defend(b, player, available, r) }
	o.surround.fn = func() *movegen.Move { return movegen.Surround(b, player, available, smart) }
	o.eyeMove.fn = func() *movegen.Move { return movegen.EyeMove(b, player, available) }
	o.eyeBlock.fn = func() *movegen.Move { return movegen.EyeBlock(b, player, available) }
	o.pattern.fn = func() *movegen.Move { return movegen.Pattern(b, player, available, r, smart, pacer) }
	o.corner.fn = func() *movegen.Move { return movegen.Corner(b) }
	o.random.fn = func() *movegen.Move { return movegen.Random(b, player, available, r) }

	// derived slots reuse their memoized base generators
	o.capture.fn = func() *movegen.Move {
		if m := o.Surround(); m != nil && m.NewLibertyCount == 0 {
			return m
		}
		return nil
	}
	o.defendCapture.fn = func() *movegen.Move {
		if m := o.Defend(); m != nil && m.OldLibertyCount == 1 && m.NewLibertyCount > 1 {
			return m
		}
		return nil
	}
	return o
}

func (o *moveOptions) get(op *moveOption) *movegen.Move {
	o.pacer.Yield()
	if !op.done {
		op.move = op.fn()
		op.done = true
	}
	return op.move
}

func (o *moveOptions) Capture() *movegen.Move       { return o.get(&o.capture) }
func (o *moveOptions) DefendCapture() *movegen.Move { return o.get(&o.defendCapture) }
func (o *moveOptions) EyeMove() *movegen.Move       { return o.get(&o.eyeMove) }
func (o *moveOptions) EyeBlock() *movegen.Move      { return o.get(&o.eyeBlock) }
func (o *moveOptions) Pattern() *movegen.Move       { return o.get(&o.pattern) }
func (o *moveOptions) Growth() *movegen.Move        { return o.get(&o.growth) }
func (o *moveOptions) Expansion() *movegen.Move     { return o.get(&o.expansion) }
func (o *moveOptions) Jump() *movegen.Move          { return o.get(&o.jump) }
func (o *moveOptions) Defend() *movegen.Move        { return o.get(&o.defend) }
func (o *moveOptions) Surround() *movegen.Move      { return o.get(&o.surround) }
func (o *moveOptions) Random() *movegen.Move        { return o.get(&o.random) }
func (o *moveOptions) Corner() *movegen.Move        { return o.get(&o.corner) }

// hasOtherMoves reports whether any of the broad generators would produce
// something; personas use it to avoid skipping patterns when nothing else
// is on offer.
func (o *moveOptions) hasOtherMoves() bool {
	return o.Growth() != nil || o.Expansion() != nil || o.Random() != nil
}
