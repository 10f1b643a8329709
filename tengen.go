// Package tengen is the decision core of a computer Go opponent. Given a
// snapshot of the board and a side to move, it selects a single legal move
// or passes, playing in the style of one of six personalities.
//
// The core is single-threaded and cooperative: it never spawns parallelism,
// and at defined suspension points it calls the host's Pacer so a UI can
// stay responsive. Randomness comes from an injected capability so that
// hosts can replay decisions deterministically.
package tengen

import (
	"github.com/pkg/errors"

	"github.com/kansuji/tengen/analysis"
	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
	"github.com/kansuji/tengen/movegen"
)

// Config configures an Engine. Rand is required; Pacer defaults to a no-op.
type Config struct {
	Opponent Opponent
	Rand     game.Rand
	Pacer    game.Pacer
}

func (c Config) IsValid() bool { return c.Rand != nil }

// Engine produces plays for one opponent personality.
type Engine struct {
	conf Config
}

// New builds an Engine from conf.
func New(conf Config) (*Engine, error) {
	if conf.Pacer == nil {
		conf.Pacer = game.NopPacer{}
	}
	if !conf.IsValid() {
		return nil, errors.New("Config requires a Rand capability")
	}
	return &Engine{conf: conf}, nil
}

// GetMove decides a play for player on the given state. The board's chains
// are recomputed in place once at ingestion; the state is otherwise
// read-only to the core.
//
// The personality is asked for a priority move first. When it has no strong
// preference, a reasonable-move fallback is gathered from the generators,
// filtered for legality, and picked from uniformly. An empty fallback means
// Pass.
func (e *Engine) GetMove(s *goban.State, player game.Colour) game.Play {
	e.conf.Pacer.Yield()
	if s.Over {
		return game.GameOverPlay()
	}
	s.Board.UpdateChains(true)

	smart := e.conf.Opponent.smart(e.conf.Rand.Rand())
	available := analysis.DisputedTerritory(s, player, smart)
	opts := newMoveOptions(s, player, available, e.conf.Rand, e.conf.Pacer, smart)

	roll := e.conf.Rand.Rand()
	if m := priorityMove(e.conf.Opponent, opts, roll); m != nil {
		e.conf.Pacer.Yield()
		return game.MovePlay(m.Point.X, m.Point.Y)
	}

	reasonable := []*movegen.Move{
		opts.Growth(), opts.Surround(), opts.Defend(),
		opts.Expansion(), opts.Pattern(), opts.EyeMove(), opts.EyeBlock(),
	}
	var cands []*movegen.Move
	for _, m := range reasonable {
		if m == nil {
			continue
		}
		if goban.EvaluateMove(s, m.Point.X, m.Point.Y, player, true) != goban.Valid {
			continue
		}
		cands = append(cands, m)
	}

	e.conf.Pacer.Yield()
	if len(cands) == 0 {
		return game.PassPlay()
	}
	pick := cands[int(e.conf.Rand.Rand()*float64(len(cands)))]
	return game.MovePlay(pick.Point.X, pick.Point.Y)
}

// GetMove is the one-shot entry point: decide a play for player on a bare
// textual board with no history.
func GetMove(simple []string, opponent Opponent, player game.Colour, r game.Rand) (game.Play, error) {
	e, err := New(Config{Opponent: opponent, Rand: r})
	if err != nil {
		return game.Play{}, err
	}
	return e.GetMove(goban.NewState(goban.FromSimple(simple), player), player), nil
}
