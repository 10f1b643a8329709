package gtp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/kansuji/tengen/game"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	var buf bytes.Buffer
	for c := range e.known {
		fmt.Fprintf(&buf, "%v\n", c)
	}
	return buf.String()
}

func quit(e *Engine) string       { close(e.ch); return "QUIT" }
func clearBoard(e *Engine) string { e.reset(); return "" }
func showboard(e *Engine) string  { return fmt.Sprintf("\n%s", e.state.Board) }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	newsize, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
	}
	if newsize < 2 || newsize > 19 {
		return "", errors.Errorf("Unacceptable size %d", newsize)
	}
	e.size = newsize
	e.reset()
	return "", nil
}

func komi(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"komi\"")
	}
	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse komi argument")
	}
	// accept komi even if ridiculous; the core doesn't score
	e.komi = k
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	colour, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	x, y, pass, err := parseVertex(args[1], e.size)
	if err != nil {
		return "", err
	}
	if pass {
		e.state.ApplyPass(colour)
		return "", nil
	}
	// tolerate out-of-turn setups the way most controllers expect
	prev := e.state.PreviousPlayer
	if prev == colour {
		e.state.PreviousPlayer = game.Opponent(colour)
	}
	if err := e.state.Apply(x, y, colour); err != nil {
		e.state.PreviousPlayer = prev
		return "", errors.New("illegal move")
	}
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.core == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	colour, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	if e.state.PreviousPlayer == colour {
		e.state.PreviousPlayer = game.Opponent(colour)
	}
	p := e.core.GetMove(e.state, colour)
	if p.Type != game.PlayMove {
		e.state.ApplyPass(colour)
		return "pass", nil
	}
	if err := e.state.Apply(p.X, p.Y, colour); err != nil {
		return "", errors.WithMessage(err, "generated an unplayable move")
	}
	return vertex(p.X, p.Y), nil
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(boardSize),
		"komi":          stdlib2(komi),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
	}
}
