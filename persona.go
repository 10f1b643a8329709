package tengen

import (
	"github.com/pkg/errors"

	"github.com/kansuji/tengen/movegen"
)

// Opponent identifies a computer personality: a fixed priority ordering over
// the move generators. The zero value, NoAI, expresses no preference at all
// and leaves everything to the orchestrator's fallback.
type Opponent int32

const (
	NoAI Opponent = iota
	Netburners
	SlumSnakes
	TheBlackHand
	Tetrads
	Daedalus
	Illuminati
)

func (o Opponent) String() string {
	switch o {
	case NoAI:
		return "No AI"
	case Netburners:
		return "Netburners"
	case SlumSnakes:
		return "Slum Snakes"
	case TheBlackHand:
		return "The Black Hand"
	case Tetrads:
		return "Tetrads"
	case Daedalus:
		return "Daedalus"
	case Illuminati:
		return "Illuminati"
	}
	return "No AI"
}

// ParseOpponent maps a personality name to its Opponent. The masked
// "????????????" personality plays as Illuminati.
func ParseOpponent(s string) (Opponent, error) {
	switch s {
	case "No AI":
		return NoAI, nil
	case "Netburners":
		return Netburners, nil
	case "Slum Snakes":
		return SlumSnakes, nil
	case "The Black Hand":
		return TheBlackHand, nil
	case "Tetrads":
		return Tetrads, nil
	case "Daedalus":
		return Daedalus, nil
	case "Illuminati", "????????????":
		return Illuminati, nil
	}
	return NoAI, errors.Errorf("Unknown opponent %q", s)
}

// smart decides whether the move quality filters apply for this decision.
// The weaker personalities play carelessly some or all of the time.
func (o Opponent) smart(roll float64) bool {
	switch o {
	case Netburners:
		return false
	case SlumSnakes:
		return roll <= 0.3
	case TheBlackHand:
		return roll <= 0.8
	}
	return true
}

// priorityMove asks the personality for its preferred move. nil means "no
// strong preference, let the fallback pick". All coin flips in one decision
// share a single roll.
func priorityMove(o Opponent, opts *moveOptions, roll float64) *movegen.Move {
	switch o {
	case NoAI:
		return nil
	case Netburners:
		return netburnersMove(opts, roll)
	case SlumSnakes:
		return slumSnakesMove(opts, roll)
	case TheBlackHand:
		return blackHandMove(opts, roll)
	case Tetrads:
		return tetradsMove(opts, roll)
	case Daedalus:
		if roll < 0.9 {
			return illuminatiMove(opts, roll)
		}
		return nil
	}
	return illuminatiMove(opts, roll)
}

func illuminatiMove(opts *moveOptions, roll float64) *movegen.Move {
	if m := opts.Capture(); m != nil {
		return m
	}
	if m := opts.DefendCapture(); m != nil {
		return m
	}
	if m := opts.EyeMove(); m != nil {
		return m
	}
	if m := opts.Surround(); m != nil && m.NewLibertyCount <= 1 {
		return m
	}
	if m := opts.EyeBlock(); m != nil {
		return m
	}
	if m := opts.Corner(); m != nil {
		return m
	}
	if roll > 0.25 || !opts.hasOtherMoves() {
		if m := opts.Pattern(); m != nil {
			return m
		}
	}
	if roll > 0.4 {
		if m := opts.Jump(); m != nil {
			return m
		}
	}
	if roll < 0.6 {
		if m := opts.Surround(); m != nil && m.NewLibertyCount <= 2 {
			return m
		}
	}
	return nil
}

func tetradsMove(opts *moveOptions, roll float64) *movegen.Move {
	if m := opts.Capture(); m != nil {
		return m
	}
	if m := opts.DefendCapture(); m != nil {
		return m
	}
	if m := opts.Pattern(); m != nil {
		return m
	}
	if m := opts.Surround(); m != nil && m.NewLibertyCount <= 1 {
		return m
	}
	if roll < 0.4 {
		return illuminatiMove(opts, roll)
	}
	return nil
}

func blackHandMove(opts *moveOptions, roll float64) *movegen.Move {
	if m := opts.Capture(); m != nil {
		return m
	}
	if m := opts.Surround(); m != nil && m.NewLibertyCount <= 1 {
		return m
	}
	if m := opts.DefendCapture(); m != nil {
		return m
	}
	if m := opts.Surround(); m != nil && m.NewLibertyCount <= 2 {
		return m
	}
	if roll < 0.3 {
		if m := illuminatiMove(opts, roll); m != nil {
			return m
		}
	}
	if roll < 0.75 {
		if m := opts.Surround(); m != nil {
			return m
		}
	}
	if roll < 0.8 {
		if m := opts.Random(); m != nil {
			return m
		}
	}
	return nil
}

func slumSnakesMove(opts *moveOptions, roll float64) *movegen.Move {
	if m := opts.DefendCapture(); m != nil {
		return m
	}
	if roll < 0.2 {
		if m := illuminatiMove(opts, roll); m != nil {
			return m
		}
	}
	if roll < 0.6 {
		if m := opts.Growth(); m != nil {
			return m
		}
	}
	if roll < 0.65 {
		if m := opts.Random(); m != nil {
			return m
		}
	}
	return nil
}

func netburnersMove(opts *moveOptions, roll float64) *movegen.Move {
	if roll < 0.2 {
		if m := illuminatiMove(opts, roll); m != nil {
			return m
		}
	}
	if roll < 0.4 {
		if m := opts.Expansion(); m != nil {
			return m
		}
	}
	if roll < 0.6 {
		if m := opts.Growth(); m != nil {
			return m
		}
	}
	if roll < 0.75 {
		if m := opts.Random(); m != nil {
			return m
		}
	}
	return nil
}
