// Package gtp exposes the decision core over a minimal Go Text Protocol
// loop, enough for a controller to set up positions, play moves, and ask
// the engine for its own.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kansuji/tengen"
	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
)

const defaultSize = 9

// Engine drives one GTP session. Lines go in on the command channel,
// responses come back on the return channel.
type Engine struct {
	name    string
	version string

	core  *tengen.Engine
	state *goban.State
	size  int
	komi  float64

	known map[string]Command
	ch    chan string
	ret   chan string
}

// New creates an Engine speaking for core. A nil known table gets
// StandardLib.
func New(core *tengen.Engine, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		name:    name,
		version: version,
		core:    core,
		size:    defaultSize,
		state:   goban.NewState(goban.New(defaultSize), game.Black),
		known:   known,
	}
}

// Start launches the session loop and returns the command and response
// channels. Closing the command channel (or sending "quit") ends the
// session.
func (e *Engine) Start() (chan string, chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.loop()
	return e.ch, e.ret
}

func (e *Engine) loop() {
	defer close(e.ret)
	for line := range e.ch {
		e.ret <- e.handle(line)
	}
}

func (e *Engine) handle(line string) string {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return respond(false, -1, "syntax error")
	}
	id := -1
	if n, err := strconv.Atoi(fields[0]); err == nil {
		id = n
		fields = fields[1:]
		if len(fields) == 0 {
			return respond(false, id, "syntax error")
		}
	}
	c, ok := e.known[fields[0]]
	if !ok {
		return respond(false, id, fmt.Sprintf("Unknown command %q", fields[0]))
	}
	id, msg, err := c.Do(id, fields[1:], e)
	if err != nil {
		return respond(false, id, err.Error())
	}
	return respond(true, id, msg)
}

func respond(ok bool, id int, msg string) string {
	marker := "="
	if !ok {
		marker = "?"
	}
	idStr := ""
	if id >= 0 {
		idStr = strconv.Itoa(id)
	}
	return fmt.Sprintf("%s%s %s\n\n", marker, idStr, msg)
}

// reset replaces the session state with an empty board of the current size.
func (e *Engine) reset() { e.state = goban.NewState(goban.New(e.size), game.Black) }

// GTP column letters skip I.
const columns = "ABCDEFGHJKLMNOPQRST"

func parseColour(s string) (game.Colour, error) {
	switch s {
	case "b", "black":
		return game.Black, nil
	case "w", "white":
		return game.White, nil
	}
	return game.Empty, errors.Errorf("Unknown colour %q", s)
}

// parseVertex turns "d4" into board coordinates, with "pass" flagged
// separately.
func parseVertex(s string, size int) (x, y int16, pass bool, err error) {
	if s == "pass" {
		return 0, 0, true, nil
	}
	if len(s) < 2 {
		return 0, 0, false, errors.Errorf("Malformed vertex %q", s)
	}
	col := strings.IndexByte(columns, byte(s[0]-'a'+'A'))
	if col < 0 || col >= size {
		return 0, 0, false, errors.Errorf("Malformed vertex %q", s)
	}
	row, aerr := strconv.Atoi(s[1:])
	if aerr != nil || row < 1 || row > size {
		return 0, 0, false, errors.Errorf("Malformed vertex %q", s)
	}
	return int16(col), int16(row - 1), false, nil
}

func vertex(x, y int16) string { return fmt.Sprintf("%c%d", columns[x], y+1) }
