package goban

import (
	"github.com/pkg/errors"

	"github.com/kansuji/tengen/game"
)

// State is the snapshot handed to the decision core for a single choice.
// The core treats it as read-only apart from the one chain recomputation it
// performs at ingestion; callers that need to preserve their own copy must
// clone before calling.
type State struct {
	Board          *Board
	PreviousPlayer game.Colour // side that made the last move; Empty when none yet
	Over           bool        // the game has ended
	PreviousBoards [][]string  // textual snapshots, for superko

	Passes int

	// cheat counters are opaque to the core and passed through untouched
	CheatCountBlack int
	CheatCountWhite int
}

// NewState wraps a board in a fresh State where player moves next.
func NewState(b *Board, player game.Colour) *State {
	s := &State{Board: b}
	if game.IsPlayer(player) {
		s.PreviousPlayer = game.Opponent(player)
	}
	return s
}

// Apply plays player's stone at (x, y), records the prior position for
// superko, and flips the turn. The full (slow-path) adjudication runs first.
func (s *State) Apply(x, y int16, player game.Colour) error {
	s.Board.UpdateChains(true)
	if v := EvaluateMove(s, x, y, player, false); v != Valid {
		return errors.WithStack(moveError{X: x, Y: y, Player: player, Why: v})
	}
	s.PreviousBoards = append(s.PreviousBoards, s.Board.Simple())
	s.Board = s.Board.EvaluateMoveResult(x, y, player)
	s.PreviousPlayer = player
	s.Passes = 0
	return nil
}

// ApplyPass records a pass by player. Two consecutive passes end the game.
func (s *State) ApplyPass(player game.Colour) {
	s.PreviousPlayer = player
	s.Passes++
	if s.Passes >= 2 {
		s.Over = true
	}
}

// priorBoardHas reports whether any recorded prior board shows player's
// stone at (x, y). It is the cheap superko proxy used on the fast path.
func (s *State) priorBoardHas(x, y int16, player game.Colour) bool {
	var want byte = 'X'
	if player == game.White {
		want = 'O'
	}
	for _, prev := range s.PreviousBoards {
		if int(x) >= len(prev) || int(y) >= len(prev[x]) {
			continue
		}
		if prev[x][y] == want {
			return true
		}
	}
	return false
}
