package gtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kansuji/tengen"
)

type fixedRand struct{ v float64 }

func (f fixedRand) Rand() float64 { return f.v }

func Test_General(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "version"
	x = <-ret
	assert.Equal("= 1\n\n", x)

	ch <- "known_command hello"
	x = <-ret
	assert.Equal("= false\n\n", x)

	ch <- "known_command name"
	x = <-ret
	assert.Equal("= true\n\n", x)

	ch <- "completelyUnheardOfCommand xxx"
	x = <-ret
	assert.Equal("? Unknown command \"completelyunheardofcommand\"\n\n", x)

	ch <- "12 protocol_version"
	x = <-ret
	assert.Equal("=12 2\n\n", x)

	ch <- "quit"
	x = <-ret
	assert.Equal("= QUIT\n\n", x)
}

func Test_PlayAndGenmove(t *testing.T) {
	assert := assert.New(t)
	core, err := tengen.New(tengen.Config{Opponent: tengen.Illuminati, Rand: fixedRand{0}})
	require.NoError(t, err)

	e := New(core, "tengen", "0.1.0", nil)
	ch, ret := e.Start()

	ch <- "boardsize 5"
	assert.Equal("= \n\n", <-ret)

	ch <- "play w c3"
	assert.Equal("= \n\n", <-ret)

	ch <- "play w c3"
	x := <-ret
	assert.Equal("? illegal move\n\n", x)

	// White's stone at c3 sits in every 5×5 corner window, so Illuminati
	// finds no corner, but the fallback still offers a move
	ch <- "genmove b"
	x = <-ret
	assert.Equal("= ", x[:2])
	assert.NotEqual("= pass\n\n", x)

	ch <- "play b pass"
	assert.Equal("= \n\n", <-ret)

	ch <- "quit"
	<-ret
}

func Test_Vertex(t *testing.T) {
	assert := assert.New(t)

	x, y, pass, err := parseVertex("a1", 9)
	assert.NoError(err)
	assert.False(pass)
	assert.Equal(int16(0), x)
	assert.Equal(int16(0), y)

	// the I column does not exist
	x, y, pass, err = parseVertex("j9", 9)
	assert.NoError(err)
	assert.Equal(int16(8), x)
	assert.Equal(int16(8), y)

	_, _, pass, err = parseVertex("pass", 9)
	assert.NoError(err)
	assert.True(pass)

	_, _, _, err = parseVertex("z1", 9)
	assert.Error(err)
	_, _, _, err = parseVertex("a77", 9)
	assert.Error(err)

	assert.Equal("A1", vertex(0, 0))
	assert.Equal("J9", vertex(8, 8))
}
