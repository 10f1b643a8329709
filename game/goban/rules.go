package goban

import (
	"fmt"

	"github.com/kansuji/tengen/game"
)

// Validity classifies a hypothetical move. Every outcome is a value, never
// an error: an illegal move is an ordinary answer to the question asked.
type Validity int32

const (
	Invalid Validity = iota
	Valid
	GameOver
	NotYourTurn
	PointBroken
	PointNotEmpty
	NoSuicide
	BoardRepeated
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case GameOver:
		return "gameOver"
	case NotYourTurn:
		return "notYourTurn"
	case PointBroken:
		return "pointBroken"
	case PointNotEmpty:
		return "pointNotEmpty"
	case NoSuicide:
		return "noSuicide"
	case BoardRepeated:
		return "boardRepeated"
	}
	return "invalid"
}

// EvaluateMove classifies the placement of player's stone at (x, y).
//
// With fast set, the check uses the current chain data and a cheap superko
// proxy (did any prior board have player's stone here) and only falls back
// to a full one-ply simulation when that is inconclusive. Callers on the
// fast path tolerate a one-position superko window. Chains must be current.
func EvaluateMove(s *State, x, y int16, player game.Colour, fast bool) Validity {
	if s.Over {
		return GameOver
	}
	if s.PreviousPlayer == player {
		return NotYourTurn
	}
	p := s.Board.At(x, y)
	if p == nil || p.Colour == game.Offline {
		return PointBroken
	}
	if p.Colour != game.Empty {
		return PointNotEmpty
	}

	if fast {
		repeat := s.priorBoardHas(x, y, player)

		var emptyCount int
		var friendlyAlive bool // some friendly neighbour chain keeps a spare liberty
		var captures bool      // some opposing neighbour chain is taken by this move
		for _, n := range s.Board.Neighbours(x, y) {
			if n == nil {
				continue
			}
			switch n.Colour {
			case game.Empty:
				emptyCount++
			case player:
				if len(n.Liberties) > 1 {
					friendlyAlive = true
				}
			default:
				if len(n.Liberties) <= 1 {
					captures = true
				}
			}
		}

		if emptyCount > 0 && !repeat {
			return Valid
		}
		if friendlyAlive && !repeat {
			return Valid
		}
		if captures && !repeat {
			return Valid
		}
		if emptyCount == 0 && !captures && !friendlyAlive {
			return NoSuicide
		}
	}

	// slow path: materialize the move
	ev := s.Board.EvaluateMoveResult(x, y, player)
	if ev.At(x, y).Colour != player {
		return NoSuicide
	}
	simple := ev.Simple()
	for _, prev := range s.PreviousBoards {
		if SimpleEq(simple, prev) {
			return BoardRepeated
		}
	}
	return Valid
}

// AllValidMoves lists every coordinate where player could legally place a
// stone, in column-major order.
func AllValidMoves(s *State, player game.Colour, fast bool) []game.Coord {
	var retVal []game.Coord
	for x := int16(0); int32(x) < s.Board.size; x++ {
		for y := int16(0); int32(y) < s.Board.size; y++ {
			if s.Board.it[x][y].Colour != game.Empty {
				continue
			}
			if EvaluateMove(s, x, y, player, fast) == Valid {
				retVal = append(retVal, game.Coord{X: x, Y: y})
			}
		}
	}
	return retVal
}

// moveError reports a move that could not be applied to a live game.
type moveError struct {
	X, Y   int16
	Player game.Colour
	Why    Validity
}

func (err moveError) Error() string {
	return fmt.Sprintf("unable to play %v at %d,%d: %v", err.Player, err.X, err.Y, err.Why)
}
